package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// halt logs why execution is stopping, passing err through unchanged so that
// callers may still match it.
func (vm *VM) halt(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		vm.logf("#", "halt EOF @%v", vm.iptr)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		vm.logf("#", "halt @%v: %v", vm.iptr, err)
	default:
		vm.logf("#", "halt error @%v: %v", vm.iptr, err)
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
