/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the OpenID4VP verifier REST service.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/cmd/vp-verifier-rest/startcmd"
)

var logger = log.New("vp-verifier-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "vp-verifier-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("VP_VERIFIER_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run vp-verifier-rest", log.WithError(err))
	}
}
