package debugger

import (
	"errors"
	"fmt"

	"github.com/elmerucr/E64-SQ/hardware/blitter"
)

// context collects the breaks signalled by the machine
type context struct {
	breaks []error

	// blitter breaks are normally informational. in strict mode they halt the
	// emulation like any other break
	strict bool
}

func (ctx *context) Reset() {
	ctx.breaks = ctx.breaks[:0]
}

func (ctx *context) Break(e error) {
	ctx.breaks = append(ctx.breaks, e)
}

// filter returns the breaks that should halt the emulation and clears the
// list. blitter breaks that are not halting are logged by the blitter itself
func (ctx *context) filter() error {
	if len(ctx.breaks) == 0 {
		return nil
	}

	var f []error
	for _, e := range ctx.breaks {
		if ctx.strict || !errors.Is(e, blitter.ContextError) {
			f = append(f, e)
		}
	}

	ctx.breaks = ctx.breaks[:0]

	if len(f) == 0 {
		return nil
	}

	err := f[0]
	for _, e := range f[1:] {
		err = fmt.Errorf("%w\n%w", err, e)
	}

	return err
}
