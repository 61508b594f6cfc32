package golearapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type profileEnvelope struct {
	User    json.RawMessage `json:"user"`
	Profile json.RawMessage `json:"profile"`
}

// GetProfile returns the signed-in user's merged profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	return c.getProfile(ctx, "GetProfile", "/profile/api")
}

// GetProfileByID returns another user's merged profile.
func (c *Client) GetProfileByID(ctx context.Context, userID int64) (Profile, error) {
	return c.getProfile(ctx, "GetProfileByID", idPath("/usuarios/%s/perfil", userID))
}

func (c *Client) getProfile(ctx context.Context, op, path string) (Profile, error) {
	var env profileEnvelope
	if err := c.do(ctx, call{op: op, method: http.MethodGet, path: path, auth: true}, &env); err != nil {
		return Profile{}, err
	}
	profile, err := mergeProfile(env)
	if err != nil {
		return Profile{}, &Error{Op: op, Status: http.StatusOK, Message: "decode profile", Err: err}
	}
	return profile, nil
}

// mergeProfile overlays the user record on the profile record. User fields
// win, so the id is the account id rather than the profile row's own key.
func mergeProfile(env profileEnvelope) (Profile, error) {
	var out Profile
	if !isNull(env.Profile) {
		if err := json.Unmarshal(env.Profile, &out); err != nil {
			return Profile{}, fmt.Errorf("profile: %w", err)
		}
	}
	if !isNull(env.User) {
		if err := json.Unmarshal(env.User, &out); err != nil {
			return Profile{}, fmt.Errorf("user: %w", err)
		}
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// UpdateProfile replaces the editable profile fields of the signed-in user.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) error {
	return c.do(ctx, call{op: "UpdateProfile", method: http.MethodPut, path: "/profile/api", json: in, auth: true}, nil)
}

// UploadProfilePicture replaces the signed-in user's avatar.
func (c *Client) UploadProfilePicture(ctx context.Context, picture Upload) error {
	form := (&multipartBody{}).file("profilePicture", &picture)
	if len(form.files) == 0 {
		return &Error{Op: "UploadProfilePicture", Status: http.StatusBadRequest, Message: "picture is required"}
	}
	return c.do(ctx, call{op: "UploadProfilePicture", method: http.MethodPost, path: "/perfil/foto", form: form, auth: true}, nil)
}

// ConnectionStatus reports whether the signed-in user follows userID.
func (c *Client) ConnectionStatus(ctx context.Context, userID int64) (bool, error) {
	var out struct {
		Following bool `json:"following"`
	}
	err := c.do(ctx, call{op: "ConnectionStatus", method: http.MethodGet, path: idPath("/usuarios/%s/connection-status", userID), auth: true}, &out)
	return out.Following, err
}

// Connect follows userID.
func (c *Client) Connect(ctx context.Context, userID int64) error {
	return c.do(ctx, call{op: "Connect", method: http.MethodPost, path: idPath("/usuarios/%s/conectar", userID), auth: true}, nil)
}

// Disconnect unfollows userID.
func (c *Client) Disconnect(ctx context.Context, userID int64) error {
	return c.do(ctx, call{op: "Disconnect", method: http.MethodDelete, path: idPath("/usuarios/%s/desconectar", userID), auth: true}, nil)
}

// Followers lists users following userID.
func (c *Client) Followers(ctx context.Context, userID int64) (Connections, error) {
	var out struct {
		Followers []Connection `json:"followers"`
		Total     *int         `json:"total"`
	}
	if err := c.do(ctx, call{op: "Followers", method: http.MethodGet, path: idPath("/usuarios/%s/seguidores", userID), auth: true}, &out); err != nil {
		return Connections{}, err
	}
	return connections(out.Followers, out.Total), nil
}

// Following lists users userID follows.
func (c *Client) Following(ctx context.Context, userID int64) (Connections, error) {
	var out struct {
		Following []Connection `json:"following"`
		Total     *int         `json:"total"`
	}
	if err := c.do(ctx, call{op: "Following", method: http.MethodGet, path: idPath("/usuarios/%s/seguindo", userID), auth: true}, &out); err != nil {
		return Connections{}, err
	}
	return connections(out.Following, out.Total), nil
}

func connections(users []Connection, total *int) Connections {
	out := Connections{Users: users, Total: len(users)}
	if total != nil {
		out.Total = *total
	}
	return out
}
