package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Hook function names looked up in the script.
const (
	HookOpen = "on_open"
	HookSave = "on_save"
)

// Host is the editor surface exposed to scripts as the tern table.
type Host interface {
	SetStatus(msg string)
	Log(msg string)
}

// Hooks runs the hook functions of one script.
type Hooks struct {
	state *State
	path  string
}

// Load runs the script at path in a new sandboxed state and exposes host
// to it.
func Load(path string, host Host, opts ...StateOption) (*Hooks, error) {
	s := NewState(opts...)
	s.RegisterModule("tern", map[string]lua.LGFunction{
		"set_status": func(L *lua.LState) int {
			host.SetStatus(L.CheckString(1))
			return 0
		},
		"log": func(L *lua.LState) int {
			host.Log(L.CheckString(1))
			return 0
		},
	})
	// stdout is the editor's screen.
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		host.Log(strings.Join(parts, "\t"))
		return 0
	}))

	if err := s.DoFile(path); err != nil {
		s.Close()
		return nil, &HookError{Hook: path, Err: err}
	}
	return &Hooks{state: s, path: path}, nil
}

// Path returns the script path.
func (h *Hooks) Path() string {
	return h.path
}

// OnOpen calls on_open(path, lines).
func (h *Hooks) OnOpen(path string, lines []string) (string, error) {
	tbl := h.state.L.CreateTable(len(lines), 0)
	for _, line := range lines {
		tbl.Append(lua.LString(line))
	}
	return h.call(HookOpen, lua.LString(path), tbl)
}

// OnSave calls on_save(path, bytes).
func (h *Hooks) OnSave(path string, n int) (string, error) {
	return h.call(HookSave, lua.LString(path), lua.LNumber(n))
}

// call runs a hook and returns its result when it is a string.
func (h *Hooks) call(hook string, args ...lua.LValue) (string, error) {
	ret, err := h.state.Call(hook, args...)
	if err != nil {
		return "", &HookError{Hook: hook, Err: err}
	}
	if s, ok := ret.(lua.LString); ok {
		return string(s), nil
	}
	return "", nil
}

// Close releases the script's state.
func (h *Hooks) Close() error {
	return h.state.Close()
}
