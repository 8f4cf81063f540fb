package main

// Project is a card in the projects section. Its title comes from the
// editable content under TitleKey.
type Project struct {
	TitleKey    string
	Title       string
	Description string
	Tag         string
}

var projects = []Project{
	{
		TitleKey: "project_1_title",
		Description: `A scroll-driven landing page with layered parallax scenes, glassmorphism panels
	and a typewriter hero that hands off to the mini-game zone.`,
		Tag: "web",
	},
	{
		TitleKey: "project_2_title",
		Description: `A sixty-second motion reel cut to music, mixing kinetic type with
	cinematic transitions for a product launch.`,
		Tag: "video",
	},
	{
		TitleKey: "project_3_title",
		Description: `A UI kit of soft gradients, tilt cards and micro-interactions, documented
	as reusable components for fast prototyping.`,
		Tag: "design",
	},
}

// GameBlurb introduces an arcade game on the home page.
type GameBlurb struct {
	Title string
	Blurb string
	Key   string
}

var gameBlurbs = []GameBlurb{
	{Title: "Skill Catcher", Key: "catcher", Blurb: "Move the paddle to catch the skills as they fall."},
	{Title: "Memory Match", Key: "memory", Blurb: "Find all four pairs before the sixty second timer runs out."},
	{Title: "Code Runner", Key: "runner", Blurb: "Jump over the bugs for as long as you can."},
	{Title: "Block Blast", Key: "block", Blurb: "Draw a piece, place it and clear full rows and columns."},
	{Title: "Cat & Mouse", Key: "cat", Blurb: "Chase the wandering mouse with your cursor."},
	{Title: "Rocket Touch", Key: "rocket", Blurb: "Steer the rocket away from falling debris."},
}

const (
	contactThanks = "Thank you for your message! I'll get back to you soon."
	contactFailed = "Sorry, there was an error sending your message. Please try again later."
)
