package main

import (
	"github.com/nitfgo/nitfgo/codec"
	"github.com/nitfgo/nitfgo/internal/mmfile"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/registry"
)

// openRecord maps path into memory and decodes it into a Record, resolving
// TRE handlers through the process-wide plugin registry. The returned close
// func releases the mapping; callers should defer it.
func openRecord(path string) (*record.Record, func() error, error) {
	data, closeFn, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := codec.Read(data, registry.GetInstance())
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return r, closeFn, nil
}
