package layout

import "fmt"

// IxDyn is a layout whose rank is only known at runtime.
type IxDyn []int

// Dyn creates a variable-rank layout from the given extents.
func Dyn(extents ...int) IxDyn {
	return IxDyn(append([]int(nil), extents...))
}

// NDim returns the number of axes.
func (d IxDyn) NDim() int { return len(d) }

// StaticNDim reports false: the rank is not part of the type.
func (d IxDyn) StaticNDim() (int, bool) { return 0, false }

// Size returns the product of the extents.
func (d IxDyn) Size() int { return size(d) }

// SizeChecked returns the product of the extents, or false on overflow.
func (d IxDyn) SizeChecked() (int, bool) { return sizeChecked(d) }

// Extents returns the underlying extents.
func (d IxDyn) Extents() []int { return d }

// Validate checks that no extent is negative.
func (d IxDyn) Validate() error { return validate(d) }

// Clone returns a copy of the layout.
func (d IxDyn) Clone() IxDyn {
	return append(IxDyn(nil), d...)
}

// RemoveAxis drops the given axis.
func (d IxDyn) RemoveAxis(axis int) IxDyn { return IxDyn(removeAt(d, axis)) }

// AddAxis inserts an axis of the given length.
func (d IxDyn) AddAxis(axis, length int) IxDyn { return IxDyn(insertAt(d, axis, length)) }

// String returns the extents in tuple form.
func (d IxDyn) String() string {
	return fmt.Sprintf("%v", []int(d))
}

// FromDyn converts a variable-rank layout into L.
// Fixed-rank targets require the ranks to match.
func FromDyn[L Layout](d IxDyn) (L, error) {
	var out L
	switch p := any(&out).(type) {
	case *Ix0:
		return out, checkRank(0, d)
	case *Ix1:
		if err := checkRank(1, d); err != nil {
			return out, err
		}
		copy(p[:], d)
	case *Ix2:
		if err := checkRank(2, d); err != nil {
			return out, err
		}
		copy(p[:], d)
	case *Ix3:
		if err := checkRank(3, d); err != nil {
			return out, err
		}
		copy(p[:], d)
	case *Ix4:
		if err := checkRank(4, d); err != nil {
			return out, err
		}
		copy(p[:], d)
	case *IxDyn:
		*p = d.Clone()
	default:
		return out, fmt.Errorf("layout %T: %w", out, ErrRankMismatch)
	}
	return out, nil
}

func checkRank(want int, d IxDyn) error {
	if len(d) != want {
		return fmt.Errorf("want rank %d, got %d: %w", want, len(d), ErrRankMismatch)
	}
	return nil
}
