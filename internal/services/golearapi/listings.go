package golearapi

import (
	"context"
	"net/http"
)

// ListPeneiras returns every open tryout. The endpoint is public.
func (c *Client) ListPeneiras(ctx context.Context) ([]Peneira, error) {
	var out struct {
		Peneiras []Peneira `json:"peneiras"`
	}
	if err := c.do(ctx, call{op: "ListPeneiras", method: http.MethodGet, path: "/peneiras/api"}, &out); err != nil {
		return nil, err
	}
	return out.Peneiras, nil
}

// CreatePeneira publishes a tryout and returns its id. The backend accepts it
// only from Olheiro accounts.
func (c *Client) CreatePeneira(ctx context.Context, in NewPeneira) (int64, error) {
	var out struct {
		PeneiraID int64 `json:"peneiraId"`
	}
	if err := c.do(ctx, call{op: "CreatePeneira", method: http.MethodPost, path: "/peneiras", json: in, auth: true}, &out); err != nil {
		return 0, err
	}
	return out.PeneiraID, nil
}

// EnrollPeneira always fails: enrollment is not exposed by the backend.
func (c *Client) EnrollPeneira(context.Context, int64) error {
	return notSupported("EnrollPeneira")
}

// UnenrollPeneira always fails: enrollment is not exposed by the backend.
func (c *Client) UnenrollPeneira(context.Context, int64) error {
	return notSupported("UnenrollPeneira")
}

// ListCompeticoes returns every competition.
func (c *Client) ListCompeticoes(ctx context.Context) ([]Competicao, error) {
	var out struct {
		Competicoes []Competicao `json:"competicoes"`
	}
	if err := c.do(ctx, call{op: "ListCompeticoes", method: http.MethodGet, path: "/competicoes/api", auth: true}, &out); err != nil {
		return nil, err
	}
	return out.Competicoes, nil
}

// CreateCompeticao publishes a competition. Only Clube accounts may do so.
func (c *Client) CreateCompeticao(ctx context.Context, in Competicao) (Competicao, error) {
	var out struct {
		Competicao
		Wrapped *Competicao `json:"competicao"`
	}
	if err := c.do(ctx, call{op: "CreateCompeticao", method: http.MethodPost, path: "/competicoes", json: in, auth: true}, &out); err != nil {
		return Competicao{}, err
	}
	if out.Wrapped != nil {
		return *out.Wrapped, nil
	}
	return out.Competicao, nil
}
