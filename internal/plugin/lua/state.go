package lua

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds every call into Lua.
const DefaultExecutionTimeout = 250 * time.Millisecond

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; a State must be used from
// the goroutine that runs the editor loop.
type State struct {
	L *lua.LState

	executionTimeout time.Duration
	closed           bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for each call into Lua.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{executionTimeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	installSandbox(L)

	s.L = L
	return s
}

// openSafeLibraries opens only libraries without host access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox removes base functions that load code or modules.
func installSandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile executes a Lua file within the execution timeout.
func (s *State) DoFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.withTimeout(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua chunk within the execution timeout.
func (s *State) DoString(code string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.withTimeout(func() error {
		return s.L.DoString(code)
	})
}

// Call calls the global function fn with args and returns its first
// result. It returns LNil without error when fn is not defined.
func (s *State) Call(fn string, args ...lua.LValue) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}

	fnVal := s.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return lua.LNil, nil
	}
	if fnVal.Type() != lua.LTFunction {
		return lua.LNil, fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
	}

	ret := lua.LValue(lua.LNil)
	err := s.withTimeout(func() error {
		if err := s.L.CallByParam(lua.P{Fn: fnVal, NRet: 1, Protect: true}, args...); err != nil {
			return err
		}
		ret = s.L.Get(-1)
		s.L.Pop(1)
		return nil
	})
	return ret, err
}

// withTimeout runs fn with a context that aborts the Lua VM when the
// execution timeout passes, recovering any panic as an error.
func (s *State) withTimeout(fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.executionTimeout)
	defer cancel()

	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
		}
	}()
	return fn()
}

// RegisterModule sets a global table of Go functions.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	if s.closed {
		return
	}
	mod := s.L.SetFuncs(s.L.NewTable(), funcs)
	s.L.SetGlobal(name, mod)
}

// Close releases the Lua state. Further calls return ErrStateClosed.
func (s *State) Close() error {
	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
