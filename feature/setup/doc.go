// Package setup implements the one-time environment bootstrap.
//
// Run creates .env.local in the working directory when it does not exist yet,
// filling it with local defaults, placeholder OAuth credentials and a freshly
// generated NEXTAUTH_SECRET. An existing file is never touched.
//
// Independently of the file, Run probes for a local MongoDB installation by
// invoking a few diagnostic commands concurrently (see DetectRuntime). The
// result is advisory only.
//
// # Usage
//
//	svc := setup.NewService(".", cfg.Setup, setup.ExecRunner{}, rand.Reader, console.New(os.Stdout), logg)
//	result, err := svc.Run(ctx)
package setup
