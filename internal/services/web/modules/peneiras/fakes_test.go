package peneiras

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
)

type fakeGateway struct {
	items     []golearapi.Peneira
	listErr   error
	createErr error
	enrollErr error
	created   *golearapi.NewPeneira
}

var _ PeneiraGateway = fakeGateway{}

func (f fakeGateway) ListPeneiras(context.Context) ([]golearapi.Peneira, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f fakeGateway) CreatePeneira(_ context.Context, in golearapi.NewPeneira) (int64, error) {
	if f.created != nil {
		*f.created = in
	}
	if f.createErr != nil {
		return 0, f.createErr
	}
	return 31, nil
}

func (f fakeGateway) EnrollPeneira(context.Context, int64) error {
	return f.enrollErr
}

func (f fakeGateway) UnenrollPeneira(context.Context, int64) error {
	return f.enrollErr
}
