package doc

// This file defines unit-safe types and helpers for length and line-height.

// Unit represents the original unit of a length value.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers like factors
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Convenience constructors for the units the fixture actually uses.
func MM(v float64) Length { return Length{Value: v, Unit: UnitMM} }
func IN(v float64) Length { return Length{Value: v, Unit: UnitIN} }
func PT(v float64) Length { return Length{Value: v, Unit: UnitPT} }

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to target unit. Supported targets: UnitMM, UnitPT.
func (l Length) To(target Unit) float64 {
	switch l.Unit {
	case UnitMM:
		if target == UnitMM || target == UnitNone {
			return l.Value
		}
		if target == UnitPT {
			return l.Value * MmToPt
		}
	case UnitCM:
		mm := l.Value * 10
		if target == UnitMM || target == UnitNone {
			return mm
		}
		if target == UnitPT {
			return mm * MmToPt
		}
	case UnitIN:
		mm := l.Value * 25.4
		if target == UnitMM || target == UnitNone {
			return mm
		}
		if target == UnitPT {
			return mm * MmToPt
		}
	case UnitPT:
		if target == UnitPT {
			return l.Value
		}
		if target == UnitMM || target == UnitNone {
			return l.Value * PtToMm
		}
	case UnitNone:
		// Treat as same numeric in target if needed by caller; usually not used for absolute lengths.
		return l.Value
	}
	// Default fall back to numeric value as-is
	return l.Value
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// LineHeightKind distinguishes factor-based vs absolute line-height specification.
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// LineHeightSpec preserves style intent: either a factor (e.g., 1.2x) or an absolute length (e.g., 18pt).
type LineHeightSpec struct {
	Kind   LineHeightKind
	Factor float64
	Len    Length
}

// FactorLineHeight builds a factor-based spec.
func FactorLineHeight(f float64) LineHeightSpec {
	return LineHeightSpec{Kind: LineHeightFactor, Factor: f}
}

// AbsoluteLineHeight builds an absolute spec.
func AbsoluteLineHeight(l Length) LineHeightSpec {
	return LineHeightSpec{Kind: LineHeightAbsolute, Len: l}
}

// Resolve computes the absolute line height in target unit using the given fontSize (which carries its unit).
func (s LineHeightSpec) Resolve(fontSize Length, target Unit) float64 {
	switch s.Kind {
	case LineHeightFactor:
		// lineHeight = fontSize * factor
		return fontSize.To(target) * s.Factor
	case LineHeightAbsolute:
		return s.Len.To(target)
	default:
		// fallback to 1.4x if unspecified
		return fontSize.To(target) * 1.4
	}
}
