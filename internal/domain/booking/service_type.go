package booking

// Known service categories. The slot listing accepts a service type as a
// pass-through parameter; slots do not carry per-service capacity.
var serviceTypes = map[string]struct{}{
	"oil_change":          {},
	"tire_rotation":       {},
	"brake_service":       {},
	"engine_diagnostic":   {},
	"transmission":        {},
	"ac_service":          {},
	"general_maintenance": {},
	"body_work":           {},
	"detailing":           {},
	"custom_modification": {},
}

func IsValidServiceType(s string) bool {
	_, ok := serviceTypes[s]
	return ok
}
