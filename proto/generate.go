// Package proto holds the wire contract between the core and the LLM worker
// pool. Run `go generate ./proto` after editing llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
