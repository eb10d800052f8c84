// Command urlproto rewrites, parses and opens URLs through urlproto
// protocol handlers.
//
//	urlproto reform 'jdbc:mysql://localhost:3307/mydb?charset=UTF-8'
//	urlproto parse 'jdbc:mysql:replication://db1/app'
//	urlproto cat --mount docs=./docs 'resource:docs:///README.md'
//	urlproto packages --manifest protocols.yaml
//
// Flags can also be set through URLPROTO_<FLAG> environment variables
// and a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
