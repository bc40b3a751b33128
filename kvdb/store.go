// Package kvdb 벤치마크 결과 레코드를 임베디드 KV 저장소(bbolt, BadgerDB, PebbleDB)에 보관한다.
//
// 키는 "<run>/" 접두사 + 빅엔디안 uint64 순번이라 접두사 스캔만으로 입력 순서대로 읽힌다.
// 값은 JSON으로 인코딩한 bench.Result.
package kvdb

import (
	"encoding/binary"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"hybridbench/bench"
)

// 지원하는 저장소 엔진
const (
	EngineBbolt  = "bbolt"
	EngineBadger = "badger"
	EnginePebble = "pebble"
)

var (
	// ErrUnknownEngine 지원하지 않는 엔진 이름
	ErrUnknownEngine = errors.New("unknown storage engine")
	// ErrInvalidRun 실행 이름이 비었거나 구분자 '/'를 포함
	ErrInvalidRun = errors.New("invalid run name")
)

// Store 실행(run) 이름 단위로 결과 레코드를 저장/조회한다.
type Store interface {
	// Put run의 기존 레코드를 모두 지우고 results로 교체한다.
	Put(run string, results []bench.Result) error
	// Load run의 레코드를 저장된 순서대로 반환한다. 없으면 빈 슬라이스.
	Load(run string) ([]bench.Result, error)
	Close() error
}

// Open engine에 맞는 저장소를 연다. bbolt는 파일 경로, 나머지는 디렉터리 경로를 받는다.
func Open(engine, path string) (Store, error) {
	switch engine {
	case EngineBbolt:
		return openBolt(path)
	case EngineBadger:
		return openBadger(path)
	case EnginePebble:
		return openPebble(path)
	}
	return nil, errors.Wrapf(ErrUnknownEngine, "%q", engine)
}

// Engines 지원 엔진 목록
func Engines() []string {
	return []string{EngineBbolt, EngineBadger, EnginePebble}
}

func checkRun(run string) error {
	if run == "" || strings.Contains(run, "/") {
		return errors.Wrapf(ErrInvalidRun, "%q", run)
	}
	return nil
}

// runPrefix "<run>/"
func runPrefix(run string) []byte {
	return append([]byte(run), '/')
}

// prefixEnd 접두사 범위의 상한 (exclusive). '/' 다음 바이트는 '0'.
func prefixEnd(run string) []byte {
	return append([]byte(run), '/'+1)
}

func recordKey(run string, seq int) []byte {
	return binary.BigEndian.AppendUint64(runPrefix(run), uint64(seq))
}

func encodeResult(r bench.Result) ([]byte, error) {
	v, err := json.Marshal(r)
	return v, errors.Wrap(err, "encode result")
}

func decodeResult(v []byte) (bench.Result, error) {
	var r bench.Result
	err := json.Unmarshal(v, &r)
	return r, errors.Wrap(err, "decode result")
}
