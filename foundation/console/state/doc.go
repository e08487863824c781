// Package state tracks what the console input line currently means.
//
// On every keystroke the host calls Update with the raw text and caret.
// The State then knows its Mode (suggesting commands, showing a signature,
// or selecting commands, history entries or parameter values), which
// parameter the caret is in and, for constructor literals, which
// constructor argument. ParamChanged tells the suggestion engine when its
// cached parameter suggestions are stale.
package state
