package gh

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorFormatting(t *testing.T) {
	withStatus := &APIError{StatusCode: 422, Message: "Validation Failed"}
	require.Equal(t, "github: Validation Failed (status 422)", withStatus.Error())

	transport := &APIError{Message: "connection refused"}
	require.Equal(t, "github: connection refused", transport.Error())
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(&APIError{StatusCode: 404, Message: "Not Found"}))
	require.True(t, IsNotFound(fmt.Errorf("get pages: %w", &APIError{StatusCode: 404})))

	require.False(t, IsNotFound(&APIError{StatusCode: 403, Message: "Forbidden"}))
	require.False(t, IsNotFound(fmt.Errorf("plain error")))
	require.False(t, IsNotFound(nil))
}

func TestAPIErrorBodyRoundTrips(t *testing.T) {
	body := json.RawMessage(`[{"resource":"PagesDeployment","code":"invalid"}]`)
	err := &APIError{StatusCode: 400, Message: "Bad Request", Body: body}

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(err.Body, &decoded))
	require.Equal(t, "PagesDeployment", decoded[0]["resource"])
}
