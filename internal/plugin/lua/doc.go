// Package lua runs user hook scripts with gopher-lua.
//
// A hook script is an ordinary Lua file that may define two global
// functions:
//
//	function on_open(path, lines) ... end   -- lines is an array of strings
//	function on_save(path, bytes) ... end   -- bytes is the count written
//
// A string returned from either hook becomes the editor's status message.
// Scripts can also call tern.set_status(msg) and tern.log(msg).
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. File
// loading functions (dofile, loadfile, load, loadstring) and the module
// system (require, module) are removed. Every call into Lua is bounded by
// a timeout; a script that runs past it is aborted with
// ErrExecutionTimeout.
package lua
