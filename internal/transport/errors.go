package transport

import "errors"

var (
	// ErrUnsupportedTransport は未対応のトランスポート種別が指定されたことを示すエラー
	ErrUnsupportedTransport = errors.New("unsupported transport")
)
