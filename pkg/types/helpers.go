package types

// SharedConstant is the value every consumer shares.
const SharedConstant = "SHARED_VALUE"

// sampleItems backs SampleItems; it is never handed out directly.
var sampleItems = [...]string{"apple", "banana", "orange", "grape"}

// Greet returns a greeting for name.
func Greet(name string) string {
	return "Hello, " + name + "!"
}

// SampleItems returns the fixed list of sample items. Each call returns a
// new slice, so callers may modify the result freely.
func SampleItems() []string {
	items := make([]string, len(sampleItems))
	copy(items, sampleItems[:])
	return items
}
