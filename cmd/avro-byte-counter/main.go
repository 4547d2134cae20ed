// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	avrocount "github.com/bluesheeptoken/avro-byte-counter"
	"github.com/bluesheeptoken/avro-byte-counter/schemajson"
)

var (
	schemaFlag  = flag.String("schema", "", "path to the Avro schema (.avsc) the datum was written with")
	dataFlag    = flag.String("data", "", "path to a file holding one binary-encoded datum")
	totalFlag   = flag.Bool("total", false, "print only the total encoded size in bytes")
	helpFlag    = flag.Bool("help", false, "show help message")
	versionFlag = flag.Bool("version", false, "show version information")
)

const version = "1.0.0"

func main() {
	flag.Parse()

	if *helpFlag {
		showHelp()
		return
	}

	if *versionFlag {
		fmt.Printf("avro-byte-counter version %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "avro-byte-counter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *schemaFlag == "" || *dataFlag == "" {
		return fmt.Errorf("both -schema and -data are required (see -help)")
	}

	schemaJSON, err := os.ReadFile(*schemaFlag)
	if err != nil {
		return err
	}
	schema, err := schemajson.Parse(schemaJSON)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", *schemaFlag, err)
	}

	datum, err := os.ReadFile(*dataFlag)
	if err != nil {
		return err
	}

	count, err := avrocount.CountBytes(schema, datum)
	if err != nil {
		return fmt.Errorf("counting %s: %w", *dataFlag, err)
	}

	if *totalFlag {
		fmt.Println(count.Total())
		return nil
	}
	for _, row := range count.FlameRows() {
		fmt.Println(row)
	}
	return nil
}

func showHelp() {
	fmt.Printf(`avro-byte-counter - per-field byte attribution for Avro binary data

Usage:
  avro-byte-counter -schema user.avsc -data user.bin

Options:
  -schema string
        path to the Avro schema (.avsc) the datum was written with
  -data string
        path to a file holding one binary-encoded datum
  -total
        print only the total encoded size in bytes
  -help
        show this help message
  -version
        show version information

Output is one collapsed-stack line per schema leaf ("path;to;field N"),
ready to pipe into a flame graph renderer such as flamegraph.pl.

Installation:
  go install github.com/bluesheeptoken/avro-byte-counter/cmd/avro-byte-counter

For more information, visit: https://github.com/bluesheeptoken/avro-byte-counter
`)
}
