package layout

// Ix0 is the rank-0 (scalar) layout. It always holds exactly one element.
type Ix0 [0]int

// Ix1 is a rank-1 layout.
type Ix1 [1]int

// Ix2 is a rank-2 layout.
type Ix2 [2]int

// Ix3 is a rank-3 layout.
type Ix3 [3]int

// Ix4 is a rank-4 layout.
type Ix4 [4]int

// Dim1 creates a rank-1 layout.
func Dim1(n int) Ix1 { return Ix1{n} }

// Dim2 creates a rank-2 layout.
func Dim2(rows, cols int) Ix2 { return Ix2{rows, cols} }

// Dim3 creates a rank-3 layout.
func Dim3(a, b, c int) Ix3 { return Ix3{a, b, c} }

// Dim4 creates a rank-4 layout.
func Dim4(a, b, c, d int) Ix4 { return Ix4{a, b, c, d} }

func (d Ix0) NDim() int                { return 0 }
func (d Ix0) StaticNDim() (int, bool)  { return 0, true }
func (d Ix0) Size() int                { return 1 }
func (d Ix0) SizeChecked() (int, bool) { return 1, true }
func (d Ix0) Extents() []int           { return []int{} }
func (d Ix0) Validate() error          { return nil }

// AddAxis returns the rank-1 layout {length}; axis is irrelevant at rank 0.
func (d Ix0) AddAxis(_, length int) Ix1 { return Ix1{length} }

func (d Ix1) NDim() int                { return 1 }
func (d Ix1) StaticNDim() (int, bool)  { return 1, true }
func (d Ix1) Size() int                { return d[0] }
func (d Ix1) SizeChecked() (int, bool) { return sizeChecked(d[:]) }
func (d Ix1) Extents() []int           { return d[:] }
func (d Ix1) Validate() error          { return validate(d[:]) }

// Pattern returns the extent as a plain int.
func (d Ix1) Pattern() int { return d[0] }

// RemoveAxis returns the scalar layout.
func (d Ix1) RemoveAxis(axis int) Ix0 {
	checkAxis(axis, 1)
	return Ix0{}
}

// AddAxis inserts an axis of the given length.
func (d Ix1) AddAxis(axis, length int) Ix2 {
	var out Ix2
	copy(out[:], insertAt(d[:], axis, length))
	return out
}

func (d Ix2) NDim() int                { return 2 }
func (d Ix2) StaticNDim() (int, bool)  { return 2, true }
func (d Ix2) Size() int                { return d[0] * d[1] }
func (d Ix2) SizeChecked() (int, bool) { return sizeChecked(d[:]) }
func (d Ix2) Extents() []int           { return d[:] }
func (d Ix2) Validate() error          { return validate(d[:]) }

// Pattern returns the extents as (rows, cols).
func (d Ix2) Pattern() (int, int) { return d[0], d[1] }

// RemoveAxis drops the given axis.
func (d Ix2) RemoveAxis(axis int) Ix1 {
	var out Ix1
	copy(out[:], removeAt(d[:], axis))
	return out
}

// AddAxis inserts an axis of the given length.
func (d Ix2) AddAxis(axis, length int) Ix3 {
	var out Ix3
	copy(out[:], insertAt(d[:], axis, length))
	return out
}

func (d Ix3) NDim() int                { return 3 }
func (d Ix3) StaticNDim() (int, bool)  { return 3, true }
func (d Ix3) Size() int                { return size(d[:]) }
func (d Ix3) SizeChecked() (int, bool) { return sizeChecked(d[:]) }
func (d Ix3) Extents() []int           { return d[:] }
func (d Ix3) Validate() error          { return validate(d[:]) }

// Pattern returns the three extents.
func (d Ix3) Pattern() (int, int, int) { return d[0], d[1], d[2] }

// RemoveAxis drops the given axis.
func (d Ix3) RemoveAxis(axis int) Ix2 {
	var out Ix2
	copy(out[:], removeAt(d[:], axis))
	return out
}

// AddAxis inserts an axis of the given length.
func (d Ix3) AddAxis(axis, length int) Ix4 {
	var out Ix4
	copy(out[:], insertAt(d[:], axis, length))
	return out
}

func (d Ix4) NDim() int                { return 4 }
func (d Ix4) StaticNDim() (int, bool)  { return 4, true }
func (d Ix4) Size() int                { return size(d[:]) }
func (d Ix4) SizeChecked() (int, bool) { return sizeChecked(d[:]) }
func (d Ix4) Extents() []int           { return d[:] }
func (d Ix4) Validate() error          { return validate(d[:]) }

// RemoveAxis drops the given axis.
func (d Ix4) RemoveAxis(axis int) Ix3 {
	var out Ix3
	copy(out[:], removeAt(d[:], axis))
	return out
}
