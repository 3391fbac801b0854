package gadget_test

import (
	"fmt"

	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/gadget"
	gadgettest "github.com/go-gadget/gadget/pkg/testing"
)

// Example shows the canonical read loop: build a window, wait for the
// user, pick values out of the sequence. The scripted backend stands in
// for the user here.
func Example() {
	backend.ResetForTest()
	b := gadgettest.NewBackend()
	if err := backend.Register(b); err != nil {
		fmt.Println(err)
		return
	}
	defer backend.ResetForTest()

	layout := gadget.Layout{
		{gadget.Text("What's your name?")},
		{gadget.Input()},
		{gadget.Button("Ok")},
	}
	win, err := gadget.Window("Greeter", layout)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer win.Close()

	// The user types a name and clicks Ok.
	b.SetInput(0, "Alice")
	b.Press("Ok")

	event, values, err := win.Read()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: hello %s\n", event, values[0])
	// Output: Ok: hello Alice
}
