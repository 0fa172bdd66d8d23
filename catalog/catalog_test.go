package catalog

import (
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleRequests(t *testing.T) {
	r := Activate(PowerManagerCallsign)
	assert.Equal(t, "Controller.1.activate", r.Method)
	assert.Equal(t, ldvalue.String("3"), r.ID)
	assert.Equal(t,
		`{"jsonrpc":"2.0","id":"3","method":"Controller.1.activate","params":{"callsign":"org.rdk.PowerManager"}}`,
		r.Body())

	assert.Equal(t, "Controller.1.deactivate", Deactivate(DeviceDiagnosticsCallsign).Method)
}

func TestPowerManagerRequests(t *testing.T) {
	assert.Equal(t,
		`{"jsonrpc":"2.0","id":42,"method":"org.rdk.PowerManager.getPowerState"}`,
		PowerManagerGetPowerState.Body())

	params := ldvalue.Parse([]byte(`{"keyCode": 30,"powerState": "ON","standbyReason": "APIUnitTest"}`))
	assert.True(t, params.Equal(PowerManagerSetPowerState.Params), "got %s", PowerManagerSetPowerState.Params)

	thresholds := ldvalue.Parse([]byte(`{"high": 100.0,"critical": 110.0}`))
	assert.True(t, thresholds.Equal(PowerManagerSetTemperatureThresholds.Params))
	assert.Contains(t, PowerManagerSetTemperatureThresholds.Body(), `"params": {"high": 100.0,"critical": 110.0}`)
	assert.Equal(t, "org.rdk.PowerManager.setTemperatureThresholds", PowerManagerSetTemperatureThresholds.Method)
}

func TestDeviceDiagnosticsMalformedRequestsAreLiteral(t *testing.T) {
	body := DeviceDiagnosticsLogMilestone.Body()
	assert.Contains(t, body, `logMilestone,"params"`)
	assert.Equal(t, ldvalue.Null(), ldvalue.Parse([]byte(body)), "body should not be valid JSON")

	assert.Equal(t, "getConfiguration_wrongparams", DeviceDiagnosticsGetConfigurationWrongParams.Operation)
	assert.Equal(t, "org.rdk.DeviceDiagnostics.getConfiguration", DeviceDiagnosticsGetConfigurationWrongParams.Method)
}

func TestLookup(t *testing.T) {
	r, err := Lookup("PowerManager", "getLastWakeupReason")
	require.NoError(t, err)
	assert.Equal(t, PowerManagerGetLastWakeupReason, r)

	r, err = Lookup("DeviceDiagnostics", "activate")
	require.NoError(t, err)
	assert.Equal(t, "Controller.1.activate", r.Method)

	_, err = Lookup("PowerManager", "nope")
	assert.Error(t, err)
	_, err = Lookup("Nope", "getPowerState")
	assert.EqualError(t, err, `unknown service "Nope" (known services: DeviceDiagnostics, PowerManager)`)
}

func TestServices(t *testing.T) {
	assert.Equal(t, []string{"DeviceDiagnostics", "PowerManager"}, Services())
	assert.Len(t, PowerManager.Operations, 16)
	assert.Len(t, DeviceDiagnostics.Operations, 8)
}
