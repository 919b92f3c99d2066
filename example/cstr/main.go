package main

import (
	"flag"
	"fmt"
	"os"

	"String_View"
	"String_View/contract"
)

func main() {
	// Demonstrates C-style buffer handling with bounded views.
	text := flag.String("text", "hello", "content to place in the fixed buffer")
	size := flag.Int("size", 32, "fixed buffer size, terminator included")
	relaxed := flag.Bool("relaxed", false, "panic on contract violations instead of exiting")
	flag.Parse()

	if *relaxed {
		contract.Apply(contract.WithMode(contract.ModePanic))
	}
	if len(*text)+1 > *size {
		fmt.Println("text does not fit the buffer")
		os.Exit(1)
	}

	buf := make([]byte, *size)
	copy(buf, *text)

	z := String_View.EnsureZ(buf)
	fmt.Printf("scanned: %q (%d characters, %d with terminator)\n",
		z.View().String(), z.Len(), len(z.Raw()))

	v := String_View.FromFixed(buf[:len(*text)+1])
	fmt.Printf("fixed view: %q extent=%d\n", v.String(), v.Extent())
	if !v.IsEmpty() {
		fmt.Printf("first character: %q\n", v.First(1).String())
		fmt.Printf("last character:  %q\n", v.Last(1).String())
	}
	fmt.Printf("equals input: %v\n", v.EqualString(*text))
}
