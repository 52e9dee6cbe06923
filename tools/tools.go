//go:build tools

// Пакет tools фиксирует версии генераторов для proto/storefront/v1.
// Генераторы ставятся вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.6.0
//
// и запускаются из корня модуля:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//		--go-grpc_out=. --go-grpc_opt=paths=source_relative \
//		proto/storefront/v1/storefront.proto
package tools
