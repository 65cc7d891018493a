package common_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/application/common"
)

type pingQuery struct{ Value int }

type pingHandler struct{}

func (h *pingHandler) Handle(_ context.Context, request common.Request) (common.Response, error) {
	query := request.(*pingQuery)
	return query.Value + 1, nil
}

func TestMediator_Dispatch(t *testing.T) {
	mediator := common.NewMediator()
	require.NoError(t, mediator.Register(reflect.TypeOf(&pingQuery{}), &pingHandler{}))

	response, err := mediator.Send(context.Background(), &pingQuery{Value: 41})

	require.NoError(t, err)
	assert.Equal(t, 42, response)
}

func TestMediator_UnknownRequest(t *testing.T) {
	mediator := common.NewMediator()

	_, err := mediator.Send(context.Background(), &pingQuery{})

	assert.Error(t, err)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	mediator := common.NewMediator()
	require.NoError(t, mediator.Register(reflect.TypeOf(&pingQuery{}), &pingHandler{}))

	err := mediator.Register(reflect.TypeOf(&pingQuery{}), &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_NilArguments(t *testing.T) {
	mediator := common.NewMediator()

	assert.Error(t, mediator.Register(nil, &pingHandler{}))
	assert.Error(t, mediator.Register(reflect.TypeOf(&pingQuery{}), nil))

	_, err := mediator.Send(context.Background(), nil)
	assert.Error(t, err)
}
