package message

import "fmt"

const saveKeyPrefix = "pipopipette:save:"

// SaveSlot names a saved match.
type SaveSlot string

const DefaultSaveSlot SaveSlot = "default"

func (s SaveSlot) Key() string {
	return saveKeyPrefix + string(s)
}

func (s SaveSlot) LockName() string {
	return fmt.Sprintf("%s:lock", s.Key())
}

func (s SaveSlot) FileName() string {
	return string(s) + ".txt"
}
