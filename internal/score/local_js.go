//go:build js

package score

import (
	"fmt"
	"syscall/js"
)

// LocalStorage keeps the encoded board in the browser's localStorage.
type LocalStorage struct {
	Key string
}

func (l LocalStorage) Load() (text string, err error) {
	defer recoverJS("read localStorage", &err)
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return "", fmt.Errorf("read localStorage: not available")
	}
	v := storage.Call("getItem", l.Key)
	if v.IsNull() || v.IsUndefined() {
		return "", nil
	}
	return v.String(), nil
}

func (l LocalStorage) Save(text string) (err error) {
	defer recoverJS("write localStorage", &err)
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return fmt.Errorf("write localStorage: not available")
	}
	storage.Call("setItem", l.Key, text)
	return nil
}

// recoverJS turns a thrown JavaScript exception (quota, privacy mode) into
// an error.
func recoverJS(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v", op, r)
	}
}

func defaultLocal() (Backend, error) {
	return LocalStorage{Key: StorageKey}, nil
}
