package logger_test

import (
	"errors"
	"testing"

	"github.com/elmerucr/E64-SQ/logger"
	"github.com/elmerucr/E64-SQ/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	tw.Clear()
	logger.Log(logger.Allow, "test2", errors.New("this is another test"))
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Logf(logger.Allow, "blitter", "swap while %s", "busy")
	logger.Logf(logger.Allow, "blitter", "swap while %s", "busy")
	logger.Logf(logger.Allow, "blitter", "swap while %s", "busy")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "blitter: swap while busy (repeat x3)\n")
}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(deny{}, "test", "should not appear")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}
