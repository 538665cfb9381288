package layout

// AxisRemover is a layout with a next smaller rank S.
// Removing axis k keeps the remaining extents in their original order.
type AxisRemover[S Layout] interface {
	Layout
	RemoveAxis(axis int) S
}

// AxisAdder is a layout with a next larger rank L.
//
// AddAxis inserts an axis of the given length at position axis. If axis is
// greater than the number of existing axes, the new axis is appended.
type AxisAdder[L Layout] interface {
	Layout
	AddAxis(axis, length int) L
}

// Compile-time checks for the rank ladder.
var (
	_ AxisAdder[Ix1]     = Ix0{}
	_ AxisAdder[Ix2]     = Ix1{}
	_ AxisAdder[Ix3]     = Ix2{}
	_ AxisAdder[Ix4]     = Ix3{}
	_ AxisRemover[Ix0]   = Ix1{}
	_ AxisRemover[Ix1]   = Ix2{}
	_ AxisRemover[Ix2]   = Ix3{}
	_ AxisRemover[Ix3]   = Ix4{}
	_ AxisAdder[IxDyn]   = IxDyn{}
	_ AxisRemover[IxDyn] = IxDyn{}
)
