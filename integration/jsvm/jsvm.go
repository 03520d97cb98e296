// Package jsvm binds vitelink into a goja runtime so page scripts can call
// vite("views/foo.js") or vite(["a.js", "b.js"]).
package jsvm

import (
	"fmt"
	"io"
	"os"

	"github.com/bmeg/vitelink/integration"
	"github.com/bmeg/vitelink/util"
	"github.com/dop251/goja"
)

// Bind sets vite and viteReactRefresh on vm. Resolution errors are thrown
// as JS exceptions.
func Bind(vm *goja.Runtime, r integration.Renderer) error {
	err := vm.Set("vite", func(call goja.FunctionCall) goja.Value {
		entries, err := integration.NormalizeEntries(call.Argument(0).Export())
		if err != nil {
			panic(vm.NewGoError(err))
		}
		out, err := r.ResolveAndRender(entries)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return vm.ToValue(out)
	})
	if err != nil {
		return err
	}
	return vm.Set("viteReactRefresh", r.ReactRefresh)
}

// RunString runs src with vite bound and a print function writing lines to out.
func RunString(name string, src string, r integration.Renderer, out io.Writer) error {
	vm := goja.New()
	if err := Bind(vm, r); err != nil {
		return err
	}
	err := vm.Set("print", func(args ...interface{}) {
		fmt.Fprintln(out, args...)
	})
	if err != nil {
		return err
	}
	if _, err := vm.RunScript(name, src); err != nil {
		return fmt.Errorf("error running %s: %s", name, err)
	}
	return nil
}

func RunFile(relpath string, r integration.Renderer, out io.Writer) error {
	path := util.AbsPath(relpath)
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script at path %s: \n%v", path, err)
	}
	return RunString(path, string(source), r, out)
}
