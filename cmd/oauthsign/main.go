// oauthsign builds a signed OAuth 1.0/1.0a protected-resource request from
// the command line and prints the Authorization header, signed URL and
// signature base string. It performs no HTTP; it is a signing inspector
// for debugging provider integrations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth-client/oauth"
	"github.com/jrsteele09/go-oauth-client/protocol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("oauthsign failed")
	}
}

func run() error {
	var (
		consumerKey    = flag.String("consumer-key", "", "OAuth consumer key")
		consumerSecret = flag.String("consumer-secret", "", "OAuth consumer secret")
		token          = flag.String("token", "", "access token")
		tokenSecret    = flag.String("token-secret", "", "access token secret")
		sigMethod      = flag.String("signature-method", "HMAC-SHA1", "HMAC-SHA1, RSA-SHA1 or PLAINTEXT")
		keyFile        = flag.String("signature-key-file", "", "PEM RSA private key (RSA-SHA1 only)")
		httpMethod     = flag.String("method", "GET", "HTTP method the request will be sent with")
		rawURL         = flag.String("url", "", "protected resource URL")
		realm          = flag.String("realm", "", "Authorization header realm")
		verbose        = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	displayAppName("oauthsign")

	ctx, err := oauth.New(oauth.Fields{
		"consumer_key":           *consumerKey,
		"consumer_secret":        *consumerSecret,
		"token":                  *token,
		"token_secret":           *tokenSecret,
		"signature_method":       *sigMethod,
		"signature_key_file":     *keyFile,
		"request_method":         *httpMethod,
		"protected_resource_url": *rawURL,
	})
	if err != nil {
		return err
	}
	if err := ctx.Request(protocol.ProtectedResource); err != nil {
		return err
	}

	header, err := ctx.ToHeader(*realm)
	if err != nil {
		return err
	}
	signedURL, err := ctx.ToURL()
	if err != nil {
		return err
	}
	base, err := ctx.SignatureBaseString()
	if err != nil {
		return err
	}

	fmt.Printf("Authorization: %s\n", header)
	fmt.Printf("Signed URL:    %s\n", signedURL)
	fmt.Printf("Base string:   %s\n", base)
	if body := ctx.ToPostBody(); body != "" {
		fmt.Printf("Post body:     %s\n", body)
	}
	return nil
}

func displayAppName(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
