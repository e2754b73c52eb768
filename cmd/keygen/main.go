// keygen is a CLI tool for generating Solana key pairs and signing or verifying messages offline.
//
// Key pairs are printed as base58 and can optionally be saved as JWK sets
// (name.private.jwk and name.public.jwk) for use with other tooling.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
	"github.com/information-sharing-networks/solana-gateway/internal/version"
)

// file naming convention - name.public.jwk and name.private.jwk
const (
	publicKeyFileNameFormat  = "%s.public.jwk"
	privateKeyFileNameFormat = "%s.private.jwk"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "keygen",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Solana key pair tool",
		Long:              "Generate Solana key pairs, and sign or verify messages without running the gateway",
		SilenceUsage:      true,
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.AddCommand(newGenerateCmd(), newSignCmd(), newVerifyCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	var name, outputDir, kid string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key pair",
		Long:  "Generate a new ed25519 key pair. With --outputdir the pair is also saved in JWK format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), name, outputDir, kid)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "wallet", "Base name for the JWK files")
	cmd.Flags().StringVarP(&outputDir, "outputdir", "o", "", "Output directory for JWK files (optional)")
	cmd.Flags().StringVarP(&kid, "kid", "k", "", "Key ID (default: random uuid)")
	return cmd
}

func runGenerate(out io.Writer, name, outputDir, kid string) error {
	keypair, err := crypto.GenerateKeypair()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "pubkey: %s\n", keypair.Address())
	fmt.Fprintf(out, "secret: %s\n", keypair.Secret())

	if outputDir == "" {
		return nil
	}

	if kid == "" {
		kid = uuid.NewString()
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	privateFile := fmt.Sprintf(privateKeyFileNameFormat, name)
	publicFile := fmt.Sprintf(publicKeyFileNameFormat, name)
	if err := crypto.SaveKeypairToJWKFiles(keypair, kid, outputDir, privateFile, publicFile); err != nil {
		return fmt.Errorf("failed to save key pair: %w", err)
	}

	fmt.Fprintf(out, "✓ Private JWK: %s (kid: %s)\n", filepath.Join(outputDir, privateFile), kid)
	fmt.Fprintf(out, "✓ Public JWK:  %s (kid: %s)\n", filepath.Join(outputDir, publicFile), kid)
	return nil
}

func newSignCmd() *cobra.Command {
	var message, secret, keyFile string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Long:  "Sign a message with a base58 secret key or a private JWK file. The signature is printed as base64",
		RunE: func(cmd *cobra.Command, args []string) error {
			keypair, err := loadKeypair(secret, keyFile)
			if err != nil {
				return err
			}
			return runSign(cmd.OutOrStdout(), keypair, message)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to sign")
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "Base58 encoded 64 byte secret key")
	cmd.Flags().StringVarP(&keyFile, "keyfile", "f", "", "Path to a private JWK file written by generate")
	cmd.MarkFlagsOneRequired("secret", "keyfile")
	cmd.MarkFlagsMutuallyExclusive("secret", "keyfile")
	return cmd
}

func loadKeypair(secret, keyFile string) (crypto.Keypair, error) {
	if secret != "" {
		return crypto.KeypairFromSecret(secret)
	}
	dir, file := filepath.Split(keyFile)
	if dir == "" {
		dir = "."
	}
	return crypto.ReadKeypairFromJWKFile(dir, file)
}

func runSign(out io.Writer, keypair crypto.Keypair, message string) error {
	signature, err := crypto.Sign(keypair, []byte(message))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "pubkey:    %s\n", keypair.Address())
	fmt.Fprintf(out, "signature: %s\n", crypto.EncodeSignature(signature))
	return nil
}

func newVerifyCmd() *cobra.Command {
	var message, signature, pubkey string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a message signature",
		Long:  "Verify a base64 signature of a message against a base58 public key. Exits with an error when the signature is not valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout(), message, signature, pubkey)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Signed message")
	cmd.Flags().StringVarP(&signature, "signature", "g", "", "Base64 signature [required]")
	cmd.Flags().StringVarP(&pubkey, "pubkey", "p", "", "Base58 public key [required]")
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}

func runVerify(out io.Writer, message, signature, pubkey string) error {
	publicKey, err := ledger.ParseAddress(pubkey)
	if err != nil {
		return err
	}

	sig, err := crypto.DecodeSignature(signature)
	if err != nil {
		return err
	}

	if !crypto.VerifyStrict(publicKey, []byte(message), sig) {
		return fmt.Errorf("signature is not valid for %s", publicKey)
	}

	fmt.Fprintln(out, "✓ signature is valid")
	return nil
}
