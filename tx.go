package mvault

import (
	"reflect"

	"github.com/mvault/mvault/errors"
)

// Msg is a request for the engine to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path. This is used by the Router to locate
	// the proper Handler. Msg should be created alongside the Handler
	// that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate returns an error if the message content is not valid on
	// its own. Stateful checks belong in the handler.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as Unmarshal almost always requires
// a pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the engine. It includes the
// actual message, along with information needed to authenticate the sender
// (verified by the host before the engine is invoked).
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures it is valid
// and loads it into the destination. Destination must be a non-nil pointer
// to a message instance of the same type as carried by the transaction.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrInput, "transaction carries no message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}
	src := reflect.ValueOf(msg)
	if got, want := src.Type(), dst.Type(); got != want {
		return errors.Wrapf(errors.ErrType, "want %s message, got %s", want, got)
	}
	dst.Elem().Set(src.Elem())
	return nil
}
