package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// Frame is the return program counter of a call site.
type Frame uintptr

const (
	unknownFunc  = "unknownFunc"
	unknownFile  = "unknownFile"
	unknownFrame = "unknownFrame"
)

// location resolves the full function name, source file and line.
func (frame Frame) location() (fn string, file string, line int) {
	pc := uintptr(frame) - 1
	f := runtime.FuncForPC(pc)
	if f == nil {
		return unknownFunc, unknownFile, 0
	}
	file, line = f.FileLine(pc)
	return f.Name(), file, line
}

// Format verbs:
// %s - source file base name, %+s - <function>\n\t<full path>
// %d - source line
// %n - short function name
// %v - %s:%d, %+v - %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	fn, file, line := frame.location()
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, fn+"\n\t"+file)
			return
		}
		_, _ = io.WriteString(s, path.Base(file))
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, shortFuncName(fn))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":"+strconv.Itoa(line))
	}
}

// MarshalText is used as the errorAt field of the error stack logs.
func (frame Frame) MarshalText() ([]byte, error) {
	fn, file, line := frame.location()
	if fn == unknownFunc {
		return []byte(unknownFrame), nil
	}
	return []byte(fn + " " + file + ":" + strconv.Itoa(line)), nil
}

// github.com/benz9527/xalgo/lib/list.(*singlyLinkedList[...]).reject => (*singlyLinkedList[...]).reject
func shortFuncName(name string) string {
	name = name[strings.LastIndex(name, "/")+1:]
	return name[strings.Index(name, ".")+1:]
}

func caller(skip int) Frame {
	var pcs [1]uintptr
	// 0 is runtime.Callers and 1 is caller itself.
	if runtime.Callers(skip+2, pcs[:]) < 1 {
		return Frame(0)
	}
	return Frame(pcs[0])
}

// ErrorStack records where an error was raised together with its causes.
// It could be inlined into zap logs, see xlog.XLogger.ErrorStack.
type ErrorStack interface {
	error
	fmt.Formatter
	zapcore.ObjectMarshaler
	Unwrap() []error
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	msg    string
	causes []error
	frame  Frame
}

func (es *errorStack) Error() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(es.msg)
	for i, cause := range es.causes {
		if i == 0 && len(es.msg) > 0 {
			_, _ = builder.WriteString(": ")
		} else if i > 0 {
			_, _ = builder.WriteString("; ")
		}
		_, _ = builder.WriteString(cause.Error())
	}
	return builder.String()
}

// Format prints the message for %s and %v. %+v appends the raising
// frame and recursively the nested error stacks of the causes.
func (es *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			es.writeVerbose(s, 0)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, es.Error())
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(es.Error()))
	}
}

func (es *errorStack) writeVerbose(w io.Writer, depth int) {
	indent := strings.Repeat("\t", depth)
	_, _ = fmt.Fprintf(w, "%s%s\n%s\tat %v (%n)", indent, es.Error(), indent, es.frame, es.frame)
	for _, cause := range es.causes {
		inner, ok := cause.(*errorStack)
		if !ok {
			continue
		}
		_, _ = io.WriteString(w, "\n")
		inner.writeVerbose(w, depth+1)
	}
}

func (es *errorStack) Unwrap() []error {
	return es.causes
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	frame, _ := es.frame.MarshalText()
	enc.AddByteString("errorAt", frame)
	if len(es.causes) <= 0 {
		return nil
	}
	return enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, cause := range es.causes {
			if inner, ok := cause.(ErrorStack); ok {
				if err := arr.AppendObject(inner); err != nil {
					return err
				}
				continue
			}
			arr.AppendString(cause.Error())
		}
		return nil
	}))
}

func newErrorStack(err error, msg string) *errorStack {
	es := &errorStack{
		msg:   msg,
		frame: caller(2),
	}
	if _, ok := err.(ErrorStack); ok {
		es.causes = []error{err}
	} else {
		// multierr combined errors are flattened, one cause per entry.
		es.causes = multierr.Errors(err)
	}
	return es
}

func NewErrorStack(msg string) ErrorStack {
	return newErrorStack(nil, msg)
}

// WrapErrorStack returns nil if err is nil.
func WrapErrorStack(err error) ErrorStack {
	if err == nil {
		return nil
	}
	return newErrorStack(err, "")
}

// WrapErrorStackWithMessage returns nil if err is nil.
func WrapErrorStackWithMessage(err error, msg string) ErrorStack {
	if err == nil {
		return nil
	}
	return newErrorStack(err, msg)
}
