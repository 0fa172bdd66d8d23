package rpctests

import "github.com/rdkcentral/rpc-contract-tests/catalog"

func DoPowerManagerTests(t *T) {
	t.RunCases(
		Case{
			ID:          "TCID_001_PowerManager_activate",
			Description: "Activates the PowerManager plugin.",
			Request:     catalog.PowerManager.Activate,
			Expected:    catalog.ExpectedLifecycleResponse,
			PassMessage: "Output response is matching with expected one. PowerManager plugin is activated",
		},
		Case{
			ID: "TCID_002_PowerManager_getPowerState",
			Description: "Returns the current power state of the device. The power state (must be one of the " +
				"following: OFF, STANDBY, ON, LIGHT_SLEEP, DEEP_SLEEP).",
			Request:     catalog.PowerManagerGetPowerState,
			Expected:    `{"jsonrpc": "2.0","id": 42,"result": {"currentState": "STANDBY","newState": "ON"}}`,
			PassMessage: "Output response is matching with expected one. powerstate  is obtained in output response",
		},
		Case{
			ID:          "TCID_008_PowerManager_getLastWakeupReason",
			Description: "Returns the reason for the device coming out of deep sleep..",
			Request:     catalog.PowerManagerGetLastWakeupReason,
			Expected:    `{"jsonrpc": "2.0","id": 42,"result": {"wakeupReason": 7}}`,
			PassMessage: "Output response is matching with expected one. getLastWakeupReason  is obtained in output response",
		},
		Case{
			ID:          "TCID_100_PowerManager_deactivate",
			Description: "Deactivates the PowerManager plugin.",
			Request:     catalog.PowerManager.Deactivate,
			Expected:    catalog.ExpectedLifecycleResponse,
			PassMessage: "Output response is matching with expected one. PowerManager plugin is deactivated",
		},
	)
}
