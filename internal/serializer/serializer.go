package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sync"
)

var (
	mu          sync.RWMutex
	serializers = make(Serializers)
)

type Serializers map[reflect.Type]Serializer

// Serializer turns a model into the value handed to clients.
type Serializer interface {
	View(input any) (any, error)
}

// SerializerFunc adapts a plain function to Serializer.
type SerializerFunc func(input any) (any, error)

func (f SerializerFunc) View(input any) (any, error) { return f(input) }

// Register registers a model and its serializer. Pointer and value forms of the
// model share one registration.
func Register(model any, serializer Serializer) {
	mu.Lock()
	defer mu.Unlock()
	serializers[typeOf(model)] = serializer
}

// View returns the client view of model, or the model itself when it is a slice of
// registered models.
func View(model any) (any, error) {
	if model == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(model)
	if rv.Kind() == reflect.Slice {
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := View(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	mu.RLock()
	s, ok := serializers[typeOf(model)]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no serializer found for model %T", model)
	}
	return s.View(model)
}

// Encode writes the JSON view of model to output.
func Encode(model any, output io.Writer) error {
	v, err := View(model)
	if err != nil {
		return err
	}
	return json.NewEncoder(output).Encode(v)
}

func typeOf(model any) reflect.Type {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
