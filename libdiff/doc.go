// Package libdiff shows the difference between two documents as a line
// diff of their encoded text.
//
// It is a display aid for the command line tool, which can print what a
// patch changed. It does not produce patches.
//
//	lines, err := libdiff.Diff(before, after)
//	err = libdiff.Write(os.Stdout, lines, true)
package libdiff
