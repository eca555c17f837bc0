package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/pagelayout/internal/config"
	"github.com/vango-dev/pagelayout/internal/errors"
	"github.com/vango-dev/pagelayout/internal/publish"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func quietEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvBucket, config.EnvRegion, config.EnvPort, config.EnvHost} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version = %q", out)
	}
}

func TestRenderStdout(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `{"title": "From Config", "lang": "fr"}`)

	out, err := execute(t, "render", "--config", dir)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{
		`<html lang="fr">`,
		"<title>From Config</title>",
		`<div class="PageLayout"><aside aria-label="Sidebar" class="PageSidebar">Sidebar</aside><div class="PageHeader">Header</div><div class="PageMain">Main</div></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPretty(t *testing.T) {
	quietEnv(t)

	out, err := execute(t, "render", "--config", t.TempDir(), "--pretty")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "  <aside") {
		t.Errorf("expected indented output, got:\n%s", out)
	}
	if strings.Contains(out, "</aside><div") {
		t.Errorf("pretty output should break between elements:\n%s", out)
	}
}

func TestRenderOutFile(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "dist", "index.html")

	out, err := execute(t, "render", "--config", dir, "--out", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `class="PageLayout"`) {
		t.Errorf("file content = %q", data)
	}
}

func TestInvalidConfig(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "{broken")

	_, err := execute(t, "render", "--config", dir)
	if !stderrors.Is(err, errors.New("E120")) {
		t.Errorf("err = %v, want E120", err)
	}
}

type fakeS3 struct {
	input *s3.PutObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	return &s3.PutObjectOutput{}, nil
}

func stubS3(t *testing.T) *fakeS3 {
	t.Helper()
	fake := &fakeS3{}
	orig := newS3Client
	newS3Client = func(context.Context, string) (publish.ObjectPutter, error) {
		return fake, nil
	}
	t.Cleanup(func() { newS3Client = orig })
	return fake
}

func TestPublish(t *testing.T) {
	quietEnv(t)
	fake := stubS3(t)
	dir := t.TempDir()
	writeConfig(t, dir, `{"publish": {"bucket": "from-config", "object": "home.html"}}`)

	out, err := execute(t, "publish", "--config", dir, "--bucket", "site", "--prefix", "preview/")
	if err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if !strings.Contains(out, "Published s3://site/preview/home.html") {
		t.Errorf("output = %q", out)
	}
	if fake.input == nil {
		t.Fatal("PutObject was not called")
	}
	if aws.ToString(fake.input.Bucket) != "site" || aws.ToString(fake.input.Key) != "preview/home.html" {
		t.Errorf("uploaded to %s/%s", aws.ToString(fake.input.Bucket), aws.ToString(fake.input.Key))
	}
}

func TestPublishBucketFromEnv(t *testing.T) {
	quietEnv(t)
	t.Setenv(config.EnvBucket, "env-bucket")
	fake := stubS3(t)

	if _, err := execute(t, "publish", "--config", t.TempDir()); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if aws.ToString(fake.input.Bucket) != "env-bucket" {
		t.Errorf("bucket = %q, want env-bucket", aws.ToString(fake.input.Bucket))
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	quietEnv(t)
	stubS3(t)

	_, err := execute(t, "publish", "--config", t.TempDir())
	if !stderrors.Is(err, errors.New("E040")) {
		t.Errorf("err = %v, want E040", err)
	}
}

func TestPrintError(t *testing.T) {
	errors.DisableColors()
	defer errors.EnableColors()

	var buf bytes.Buffer
	printError(&buf, errors.New("E040"))
	if !strings.Contains(buf.String(), "E040: Bucket not configured") {
		t.Errorf("coded error = %q", buf.String())
	}

	buf.Reset()
	printError(&buf, stderrors.New("unknown flag: --nope"))
	if !strings.Contains(buf.String(), "Error:") || !strings.Contains(buf.String(), "unknown flag: --nope") {
		t.Errorf("plain error = %q", buf.String())
	}
}
