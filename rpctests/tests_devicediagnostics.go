package rpctests

import "github.com/rdkcentral/rpc-contract-tests/catalog"

func DoDeviceDiagnosticsTests(t *T) {
	t.RunCases(
		Case{
			ID:          "TCID_001_DeviceDiagnostics_activate",
			Description: "Activates the DeviceDiagnostics plugin.",
			Request:     catalog.DeviceDiagnostics.Activate,
			Expected:    catalog.ExpectedLifecycleResponse,
		},
		Case{
			ID:          "TCID_100_DeviceDiagnostics_deactivate",
			Description: "Deactivates the DeviceDiagnostics plugin.",
			Request:     catalog.DeviceDiagnostics.Deactivate,
			Expected:    catalog.ExpectedLifecycleResponse,
		},
	)
}
