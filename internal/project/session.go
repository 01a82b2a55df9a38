package project

import (
	"bytes"
	"context"

	"github.com/piwi3910/toolbox/internal/model"
)

// SessionKey is the store key of the desktop app's working project.
const SessionKey = "current-project"

// SaveSession stores the project under key as JSON.
func SaveSession(ctx context.Context, store Store, key string, p model.Project) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	return store.Save(ctx, key, buf.Bytes())
}

// LoadSession returns the project stored under key. The boolean is false
// when nothing has been stored yet.
func LoadSession(ctx context.Context, store Store, key string) (model.Project, bool, error) {
	data, ok, err := store.Load(ctx, key)
	if err != nil || !ok {
		return model.Project{}, ok, err
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return model.Project{}, false, err
	}
	return p, true, nil
}
