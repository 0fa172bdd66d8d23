package catalog

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const PowerManagerCallsign = "org.rdk.PowerManager"

var (
	// Returns the over-temperature grace interval value.
	PowerManagerGetOvertempGraceInterval = method(PowerManagerCallsign, "getOvertempGraceInterval", ldvalue.Null())

	// Returns the current power state of the device.
	PowerManagerGetPowerState = method(PowerManagerCallsign, "getPowerState", ldvalue.Null())

	PowerManagerGetThermalState = method(PowerManagerCallsign, "getThermalState", ldvalue.Null())

	// Not supported on all devices.
	PowerManagerGetTemperatureThresholds = method(PowerManagerCallsign, "getTemperatureThresholds", ldvalue.Null())

	// Not supported on all devices.
	PowerManagerSetOvertempGraceInterval = method(PowerManagerCallsign, "setOvertempGraceInterval",
		object("graceInterval", 60))

	PowerManagerSetPowerState = method(PowerManagerCallsign, "setPowerState",
		object("keyCode", 30, "powerState", "ON", "standbyReason", "APIUnitTest"))

	PowerManagerSetDeepSleepTimer = method(PowerManagerCallsign, "setDeepSleepTimer",
		object("timeOut", 3))

	// Returns the reason for the device coming out of deep sleep.
	PowerManagerGetLastWakeupReason = method(PowerManagerCallsign, "getLastWakeupReason", ldvalue.Null())

	PowerManagerGetLastWakeupKeyCode = method(PowerManagerCallsign, "getLastWakeupKeyCode", ldvalue.Null())

	PowerManagerReboot = method(PowerManagerCallsign, "reboot",
		object("rebootRequestor", "SystemServicesPlugin",
			"rebootReasonCustom", "FIRMWARE_FAILURE",
			"rebootReasonOther", "FIRMWARE_FAILURE"))

	// If network standby is true, the device supports WakeOnLAN and WakeOnWLAN actions in STR mode.
	PowerManagerGetNetworkStandbyMode = method(PowerManagerCallsign, "getNetworkStandbyMode", ldvalue.Null())

	// Deprecated on the device side in favor of setWakeupSrcConfig.
	PowerManagerSetNetworkStandbyMode = method(PowerManagerCallsign, "setNetworkStandbyMode",
		object("standbyMode", false))

	// Does not persist across reboots.
	PowerManagerSetWakeupSrcConfig = method(PowerManagerCallsign, "setWakeupSrcConfig",
		object("powerState", 4, "wakeupSources", 6))

	PowerManagerSetSystemMode = method(PowerManagerCallsign, "setSystemMode",
		object("currentMode", 2, "newMode", 1))

	PowerManagerGetPowerStateBeforeReboot = method(PowerManagerCallsign, "getPowerStateBeforeReboot", ldvalue.Null())

	// Not supported on all devices.
	// Encoding through ldvalue would turn 100.0 into 100, so the body is sent as written.
	PowerManagerSetTemperatureThresholds = verbatim(
		method(PowerManagerCallsign, "setTemperatureThresholds", object("high", 100.0, "critical", 110.0)),
		`{"jsonrpc": "2.0","id": 42,"method": "org.rdk.PowerManager.setTemperatureThresholds","params": {"high": 100.0,"critical": 110.0}}`)
)

var PowerManager = register(Service{
	Name:       "PowerManager",
	Callsign:   PowerManagerCallsign,
	Activate:   Activate(PowerManagerCallsign),
	Deactivate: Deactivate(PowerManagerCallsign),
	Operations: operations(
		PowerManagerGetOvertempGraceInterval,
		PowerManagerGetPowerState,
		PowerManagerGetThermalState,
		PowerManagerGetTemperatureThresholds,
		PowerManagerSetOvertempGraceInterval,
		PowerManagerSetPowerState,
		PowerManagerSetDeepSleepTimer,
		PowerManagerGetLastWakeupReason,
		PowerManagerGetLastWakeupKeyCode,
		PowerManagerReboot,
		PowerManagerGetNetworkStandbyMode,
		PowerManagerSetNetworkStandbyMode,
		PowerManagerSetWakeupSrcConfig,
		PowerManagerSetSystemMode,
		PowerManagerGetPowerStateBeforeReboot,
		PowerManagerSetTemperatureThresholds,
	),
})
