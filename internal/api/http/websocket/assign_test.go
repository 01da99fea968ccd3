package websocket

import (
	"encoding/json"
	"testing"

	"lmm-be/internal/service"
	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *service.AssignmentService {
	t.Helper()

	c, err := catalog.New([]catalog.Role{
		{ID: 1, Name: "Mr. Nosey", Archetype: "Town Investigative"},
		{ID: 2, Name: "Mr. Mischief", Archetype: "Mafia Deception"},
	})
	require.NoError(t, err)

	return service.NewAssignmentService(c)
}

func TestHandleMessage_Assign(t *testing.T) {
	msg := `{"request_type":"Assign","request_id":"r1","data":{"role_list":"Town Any\nMafia Any","player_list":"Ann\nBen","seed":"x"}}`

	resp := HandleMessage(testService(t), []byte(msg))

	assert.Equal(t, RESP_ASSIGN_RESULT, resp.RespType)
	assert.Equal(t, "r1", resp.RequestID)

	result, ok := resp.Data.(dto.AssignResponse)
	require.True(t, ok)
	assert.Equal(t, 2, result.Assigned)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, result.Assignments[0].Role.ID)
	assert.Equal(t, 2, result.Assignments[1].Role.ID)
}

func TestHandleMessage_Errors(t *testing.T) {
	svc := testService(t)

	resp := HandleMessage(svc, []byte("not json"))
	assert.Equal(t, RESP_ERROR, resp.RespType)
	assert.Equal(t, ErrorResponse{Message: "invalid request format"}, resp.Data)

	resp = HandleMessage(svc, []byte(`{"request_type":"Reroll","data":{}}`))
	assert.Equal(t, RESP_ERROR, resp.RespType)
	assert.Equal(t, ErrorResponse{Message: "unsupported request type: Reroll"}, resp.Data)

	resp = HandleMessage(svc, []byte(`{"request_type":"Assign","request_id":"r2","data":{"role_list":""}}`))
	assert.Equal(t, RESP_ERROR, resp.RespType)
	assert.Equal(t, "r2", resp.RequestID)
	assert.Equal(t, ErrorResponse{Message: service.ErrRoleListRequired.Error()}, resp.Data)
}

func TestResponseWrapper_JSON(t *testing.T) {
	raw, err := json.Marshal(WrapErrResponse("", "boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"response_type":"Error","data":{"message":"boom"}}`, string(raw))
}
