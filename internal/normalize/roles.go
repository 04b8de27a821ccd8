package normalize

import "faersview/internal"

var roleLabels = map[internal.RoleCode]string{
	internal.RolePrimarySuspect:   "Primary Suspect",
	internal.RoleSecondarySuspect: "Secondary Suspect",
	internal.RoleConcomitant:      "Concomitant",
	internal.RoleInteracting:      "Interacting",
}

// RoleLabel expands a role code. Unrecognized codes are returned verbatim.
func RoleLabel(code string) string {
	if label, ok := roleLabels[internal.RoleCode(code)]; ok {
		return label
	}
	return code
}

// RoleClass is the card style for a role code: ps, ss, or c for everything else.
func RoleClass(code string) string {
	switch internal.RoleCode(code) {
	case internal.RolePrimarySuspect:
		return "ps"
	case internal.RoleSecondarySuspect:
		return "ss"
	default:
		return "c"
	}
}
