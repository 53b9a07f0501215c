package assert

import "testing"

func TestT(t *testing.T) {

	T(true, "should not panic")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected assert.T(false) to panic")
		}
	}()

	T(false, "value was %d", 5)
}
