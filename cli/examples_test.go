package cli

import (
	"fmt"
	"strings"

	"github.com/lggruspe/climux/combin"
	"github.com/lggruspe/climux/infer"
)

func ExampleCLI_Run() {
	greet := New("hello", "Greet someone.").
		Add(
			NewParam("name", combin.One("str", infer.ParseString)),
			NewParam("greeting", combin.One("str", infer.ParseString), "-g", "--greeting").
				WithArity(1),
		).
		Takes(Pos("name"), KeyDefault("greeting", "Hello")).
		Does(func(args []any, kwargs map[string]any) (any, error) {
			fmt.Printf("%s, %s!\n", kwargs["greeting"], args[0])
			return nil, nil
		})

	_, _ = greet.Run([]string{"world"})
	_, _ = greet.Run([]string{"-g", "Hi", "all"})
	// Output:
	// Hello, world!
	// Hi, all!
}

func ExampleCLI_AddCommand() {
	calc := New("calc", "Do arithmetic.")
	calc.AddCommand(New("add", "Add integers.").
		Add(NewParam("xs", combin.Repeat(combin.One("int", infer.ParseInt)))).
		Takes(VarPos("xs")).
		Does(func(args []any, _ map[string]any) (any, error) {
			sum := 0
			for _, x := range args {
				sum += x.(int)
			}
			fmt.Println(sum)
			return nil, nil
		}))

	_, _ = calc.Run([]string{"add", "1", "2", "3"})
	// Output:
	// 6
}

func ExampleCLI_Takes() {
	echo := New("echo", "Print the arguments.").
		Add(NewParam("words", combin.Repeat(combin.One("str", infer.ParseString)))).
		Takes(VarPos("words")).
		Does(func(args []any, _ map[string]any) (any, error) {
			words := make([]string, len(args))
			for i, arg := range args {
				words[i] = arg.(string)
			}
			fmt.Println(strings.Join(words, " "))
			return nil, nil
		})

	_, _ = echo.Run([]string{"hello,", "world"})
	// Output:
	// hello, world
}

func ExampleUsage() {
	c := New("hello", "Greet someone.").
		Add(
			NewParam("name", combin.One("str", infer.ParseString)),
			Flag("v", "-v").WithDescription("Verbose."),
		)
	fmt.Print(Usage(c))
	// Output:
	// Greet someone.
	//
	// usage: hello [options] <str>
	//
	// options:
	//   -v  Verbose.
}
