package sortable

// Wrappers that let builtin values go through SortSortable or any other code
// written against Sortable. Convert back with a plain type conversion.
type (
	Int    int
	Byte   byte
	String string
	// Float wraps float64. NaN is neither equal to nor less than anything,
	// so a slice containing NaN has no well-defined order.
	Float float64
)

var (
	_ Sortable[Int]    = Int(0)
	_ Sortable[Byte]   = Byte(0)
	_ Sortable[String] = String("")
	_ Sortable[Float]  = Float(0)
)

func (i Int) Equals(other Int) bool   { return i == other }
func (i Int) LessThan(other Int) bool { return i < other }

func (b Byte) Equals(other Byte) bool   { return b == other }
func (b Byte) LessThan(other Byte) bool { return b < other }

func (s String) Equals(other String) bool   { return s == other }
func (s String) LessThan(other String) bool { return s < other }

func (f Float) Equals(other Float) bool   { return f == other }
func (f Float) LessThan(other Float) bool { return f < other }
