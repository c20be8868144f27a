package derive

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

type enumSpec struct {
	iface    reflect.Type
	disc     map[reflect.Type]uint16
	variants []reflect.Type
}

var (
	enumMu    sync.RWMutex
	enumSpecs = map[reflect.Type]*enumSpec{}
)

// RegisterEnum declares the interface type E as an enum with the given
// variants. Registration order assigns discriminants 0..n-1; the same
// order must be used on both ends of the wire for a given type version.
// Variant values must be non-pointer and of distinct types. A type may
// only be registered once.
func RegisterEnum[E any](variants ...E) error {
	iface := reflect.TypeOf((*E)(nil)).Elem()
	if iface.Kind() != reflect.Interface {
		return fmt.Errorf("derive: enum type %s is not an interface", iface)
	}
	if len(variants) == 0 {
		return fmt.Errorf("derive: enum %s has no variants", iface)
	}
	if len(variants) > math.MaxUint16+1 {
		return fmt.Errorf("derive: enum %s has %d variants, more than a discriminant can name", iface, len(variants))
	}

	spec := &enumSpec{
		iface: iface,
		disc:  make(map[reflect.Type]uint16, len(variants)),
	}
	for i, v := range variants {
		dt := reflect.TypeOf(v)
		if dt == nil {
			return fmt.Errorf("derive: enum %s: variant %d is nil", iface, i)
		}
		if dt.Kind() == reflect.Pointer {
			return fmt.Errorf("derive: enum %s: variant %s must be a value, not a pointer", iface, dt)
		}
		if _, dup := spec.disc[dt]; dup {
			return fmt.Errorf("derive: enum %s: duplicate variant %s", iface, dt)
		}
		spec.disc[dt] = uint16(i)
		spec.variants = append(spec.variants, dt)
	}

	enumMu.Lock()
	defer enumMu.Unlock()
	if _, exists := enumSpecs[iface]; exists {
		return fmt.Errorf("derive: enum %s already registered", iface)
	}
	enumSpecs[iface] = spec

	Logger().Debug("registered enum",
		zap.String("type", iface.String()),
		zap.Int("variants", len(spec.variants)))
	return nil
}

// MustRegisterEnum is RegisterEnum panicking on error, for use in init.
func MustRegisterEnum[E any](variants ...E) {
	if err := RegisterEnum(variants...); err != nil {
		panic(err)
	}
}

func enumFor(t reflect.Type) (*enumSpec, bool) {
	enumMu.RLock()
	defer enumMu.RUnlock()
	spec, ok := enumSpecs[t]
	return spec, ok
}
