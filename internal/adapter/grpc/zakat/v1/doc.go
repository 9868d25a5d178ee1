// Package zakatv1 holds the generated ZakatService messages and stubs.
package zakatv1

//go:generate protoc -I ../../../../../proto --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative zakat/v1/zakat.proto
