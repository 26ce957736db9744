package serialize_test

import (
	"errors"
	"io"
	"testing"

	"github.com/thegalactic-go/lconcept/serialize"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := serialize.NewRegistry[string]()

	var calls int
	err := reg.RegisterWriter("dot", serialize.WriterFunc[string](func(_ io.Writer, _ string) error {
		calls++
		return nil
	}))
	if err != nil {
		t.Fatalf("RegisterWriter: %v", err)
	}

	got, err := reg.Writer("dot")
	if err != nil {
		t.Fatalf("Writer(dot): %v", err)
	}
	if err := got.Write(io.Discard, "x"); err != nil {
		t.Fatalf("Write via looked-up writer: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	if _, err := reg.Writer("xml"); !errors.Is(err, serialize.ErrUnknownFormat) {
		t.Fatalf("Writer(xml): got %v, want ErrUnknownFormat", err)
	}
}

func TestRegistryRejectsEmptyExtension(t *testing.T) {
	reg := serialize.NewRegistry[string]()
	if err := reg.RegisterReader("", nil); !errors.Is(err, serialize.ErrEmptyExtension) {
		t.Fatalf("RegisterReader(\"\"): got %v, want ErrEmptyExtension", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	reg := serialize.NewRegistry[string]()
	_ = reg.RegisterReader("txt", serialize.ReaderFunc[string](func(io.Reader) (string, error) { return "", nil }))

	if _, ok := reg.UnregisterReader("txt"); !ok {
		t.Fatal("UnregisterReader(txt) should report a prior reader existed")
	}
	if _, err := reg.Reader("txt"); !errors.Is(err, serialize.ErrUnknownFormat) {
		t.Fatalf("Reader(txt) after unregister: got %v, want ErrUnknownFormat", err)
	}
}
