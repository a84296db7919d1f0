package uricodec_test

import (
	"fmt"

	"github.com/ghettovoice/uricodec"
)

func ExampleEncode() {
	out, err := uricodec.Encode([]string{"red", "green", "blue"}, "list", uricodec.FormExplode)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	out, err = uricodec.Encode([]string{"red", "green", "blue"}, "list", uricodec.FormUnexplode)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	out, err = uricodec.Encode("Hello World", "hello", uricodec.FormDataExplode)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// list=red&list=green&list=blue
	// list=red,green,blue
	// hello=Hello+World
}

func ExampleEncode_deepObject() {
	filter := map[string]string{"color": "red", "size": "L"}
	out, err := uricodec.Encode(filter, "filter", uricodec.DeepObjectExplode)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// filter%5Bcolor%5D=red&filter%5Bsize%5D=L
}

func ExampleDecode() {
	var list []string
	if err := uricodec.Decode(&list, "list", "list=red,green,blue", uricodec.FormUnexplode); err != nil {
		panic(err)
	}
	fmt.Println(list)

	var hello string
	if err := uricodec.Decode(&hello, "hello", "hello=Hello+World", uricodec.FormDataExplode); err != nil {
		panic(err)
	}
	fmt.Println(hello)
	// Output:
	// [red green blue]
	// Hello World
}

func ExampleDecodeIfPresent() {
	var limit int
	ok, err := uricodec.DecodeIfPresent(&limit, "limit", "offset=10", uricodec.FormExplode)
	if err != nil {
		panic(err)
	}
	fmt.Println(ok, limit)
	// Output:
	// false 0
}
