//go:build !js

package score

func defaultLocal() (Backend, error) {
	path, err := DefaultFilePath()
	if err != nil {
		return nil, err
	}
	return FileBackend{Path: path}, nil
}
