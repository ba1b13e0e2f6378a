// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Counters      *PoolHandle `prefix:"N"` // name → uint64
	Circles       *PoolHandle `prefix:"C"` // circle id → circle record
	Members       *PoolHandle `prefix:"M"` // circle id ‖ address → member record
	MemberList    *PoolHandle `prefix:"L"` // circle id ‖ index → address
	MemberCircles *PoolHandle `prefix:"I"` // address ‖ circle id → nil
	Streaks       *PoolHandle `prefix:"K"` // circle id ‖ address → streak record
	Proposals     *PoolHandle `prefix:"P"` // circle id ‖ proposal id → proposal record
	Votes         *PoolHandle `prefix:"V"` // circle id ‖ proposal id ‖ address → support
	Badges        *PoolHandle `prefix:"B"` // address ‖ circle id ‖ kind → timestamp
	BadgeMinters  *PoolHandle `prefix:"T"` // address → nil
	Disbursements *PoolHandle `prefix:"D"` // recipient ‖ circle id ‖ proposal id → disbursement record
	Fees          *PoolHandle `prefix:"F"` // payer ‖ circle id → fee record
	Events        *PoolHandle `prefix:"E"` // sequence → event record
}

// Database - a leveldb holding all pools
type Database struct {
	sync.Mutex // serialises transactions

	db       *leveldb.DB
	readOnly bool
	log      *logger.L

	// Pool - the handles for each data set
	Pool pools
}

// Reader - read access to committed or pending data
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// open modes
const (
	ReadOnly  = true
	ReadWrite = false
)

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// Open - open or create a database on disk
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - open an empty in-memory database
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	if 0 == version && !readOnly {
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version != currentDBVersion {
		return nil, fmt.Errorf("database version: %d is not current version: %d", version, currentDBVersion)
	}

	d := &Database{
		db:       db,
		readOnly: readOnly,
		log:      logger.New("storage"),
	}

	poolType := reflect.TypeOf(d.Pool)
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	// this will panic if a field is not exported
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true
	return d, nil
}

// Close - flush and close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		if err := d.db.Close(); nil != err {
			d.log.Errorf("close error: %s", err)
		}
		d.db = nil
	}
}

// Get - committed value
func (d *Database) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - committed number
func (d *Database) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// Has - committed key exists
func (d *Database) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return db.Put(versionKey, currentVersion, nil)
}

// ensure the database is available for writing
func (d *Database) writable() error {
	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return nil
}
