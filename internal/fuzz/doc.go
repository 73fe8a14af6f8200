// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics and hangs on
// arbitrary input and check tree invariants whenever a parse succeeds.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
