package localize_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/locale"
)

const fixtures = "testdata/locales"

func systemLocale(tag string) localize.Option {
	return localize.WithSystemLocale(func() locale.Locale { return locale.Parse(tag) })
}

func newService(t *testing.T, opts ...localize.Option) *localize.Service {
	t.Helper()
	svc, err := localize.New(fixtures, append([]localize.Option{systemLocale("en-US")}, opts...)...)
	require.NoError(t, err)
	return svc
}

// writeTree creates files below a temporary root and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing")
		_, err := localize.New(path)
		require.ErrorIs(t, err, localize.ErrLocalizationFolderNotFound)

		var folderErr *localize.LocalizationFolderError
		require.True(t, errors.As(err, &folderErr))
		assert.Equal(t, path, folderErr.Path)
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"file.json": "{}"})
		_, err := localize.New(filepath.Join(root, "file.json"))
		require.ErrorIs(t, err, localize.ErrLocalizationFolderNotFound)
	})

	t.Run("no language folder", func(t *testing.T) {
		t.Parallel()

		_, err := localize.New(fixtures, systemLocale("ja-JP"), localize.WithDefaultLocale("ko-KR"))
		require.ErrorIs(t, err, localize.ErrLanguageFolderNotFound)

		var langErr *localize.LanguageFolderError
		require.True(t, errors.As(err, &langErr))
		assert.Equal(t, "ja-JP", langErr.Requested.Tag())
		assert.Equal(t, "ko-KR", langErr.Default.Tag())
	})

	t.Run("language folder fallback", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		res := svc.Resolution()
		assert.Equal(t, "en", res.Folder)
		assert.Equal(t, locale.MatchLanguage, res.Match)
		assert.False(t, res.Fallback)
		assert.Equal(t, "en-US", svc.Locale().Tag())
	})

	t.Run("default locale fallback", func(t *testing.T) {
		t.Parallel()

		svc, err := localize.New(fixtures, systemLocale("ja-JP"))
		require.NoError(t, err)
		assert.Equal(t, "en", svc.Resolution().Folder)
		assert.True(t, svc.Resolution().Fallback)
		assert.Equal(t, localize.DefaultLocale, svc.DefaultLocale().Tag())
	})

	t.Run("forced locale wins over system", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithForcedLocale("fr_CA"))
		assert.Equal(t, "fr", svc.Resolution().Folder)
		assert.Equal(t, "fr-CA", svc.ForcedLocale().Tag())
		assert.Equal(t, "Bonjour bob", svc.Translate("common.hello", localize.P("name", "bob")))
	})

	t.Run("no load on init", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithLoadOnInit(false))
		assert.Equal(t, "common.hello", svc.Translate("common.hello"))
		assert.Equal(t, "en", svc.Resolution().Folder)
	})

	t.Run("initial scope", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithInitialScope("menu"))
		assert.Equal(t, "Open", svc.Translate("menu.items.open"))
		assert.False(t, svc.Has("common"))
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	assert.Equal(t, fixtures, svc.RootPath())

	tests := []struct {
		name     string
		key      string
		params   []localize.Param
		expected string
	}{
		{"leaf", "common.nested.deep.value", nil, "Deep"},
		{"nested directory", "menu.items.close", nil, "Close"},
		{"top level file", "errors.not_found", nil, "Not found"},
		{"params", "common.hello", []localize.Param{localize.P("name", "bob")}, "Hello bob"},
		{"trimmed quotes", "common.quoted", nil, "padded"},
		{"array index", "common.list.1", nil, "second"},
		{"number", "common.number", nil, "7"},
		{"missing key", "common.missing", nil, "common.missing"},
		{"missing root key", "nothing", nil, "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, svc.Translate(tt.key, tt.params...))
		})
	}
}

func TestTranslateCount(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	assert.Equal(t, "one apple", svc.TranslateCount("common.apples", 1))
	assert.Equal(t, "5 apples", svc.TranslateCount("common.apples", 5, localize.P("count", "5")))
	assert.Equal(t, "a couple", svc.TranslateCount("common.range", 2))
	assert.Equal(t, "several", svc.TranslateCount("common.range", 10))
	assert.Equal(t, "common.none", svc.TranslateCount("common.none", 2))
}

func TestUnload(t *testing.T) {
	t.Parallel()

	t.Run("everything", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.Equal(t, "Deep", svc.Translate("common.nested.deep.value"))

		svc.Unload("")
		assert.Equal(t, "common.nested.deep.value", svc.Translate("common.nested.deep.value"))
		assert.Equal(t, "menu.items.open", svc.Translate("menu.items.open"))
	})

	t.Run("single entry", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		svc.Unload("menu.items")
		assert.Equal(t, "menu.items.open", svc.Translate("menu.items.open"))
		assert.True(t, svc.Has("menu"))
		assert.Equal(t, "Not found", svc.Translate("errors.not_found"))
	})

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		svc.Unload("nope.items")
		assert.Equal(t, "Open", svc.Translate("menu.items.open"))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("directory scope", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithLoadOnInit(false))
		require.NoError(t, svc.Load("menu"))
		assert.Equal(t, "Open", svc.Translate("menu.items.open"))
		assert.False(t, svc.Has("common"))
	})

	t.Run("file scope", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithLoadOnInit(false))
		require.NoError(t, svc.Load("errors"))
		assert.Equal(t, "Not found", svc.Translate("errors.not_found"))

		require.NoError(t, svc.Load("menu.items"))
		assert.Equal(t, "Close", svc.Translate("menu.items.close"))
	})

	t.Run("missing scope is a no-op", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithLoadOnInit(false))
		require.NoError(t, svc.Load("does.not.exist"))
		assert.False(t, svc.Has("does"))
	})

	t.Run("reload replaces scope content", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"en/app/a.json": `{"x": "1"}`,
			"en/app/b.json": `{"y": "2"}`,
		})
		svc, err := localize.New(root, systemLocale("en"))
		require.NoError(t, err)
		require.Equal(t, "2", svc.Translate("app.b.y"))

		require.NoError(t, os.Remove(filepath.Join(root, "en", "app", "b.json")))
		require.NoError(t, svc.Load("app"))
		assert.Equal(t, "1", svc.Translate("app.a.x"))
		assert.Equal(t, "app.b.y", svc.Translate("app.b.y"))
	})

	t.Run("invalid file is reported and skipped", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"en/good.json": `{"ok": "yes"}`,
			"en/bad.json":  `{"broken": `,
		})

		_, err := localize.New(root, systemLocale("en"))
		require.ErrorIs(t, err, localize.ErrInvalidFile)

		svc, err := localize.New(root, systemLocale("en"), localize.WithLoadOnInit(false))
		require.NoError(t, err)
		err = svc.Load("")
		require.ErrorIs(t, err, localize.ErrInvalidFile)
		assert.Contains(t, err.Error(), "bad.json")
		assert.Equal(t, "yes", svc.Translate("good.ok"))
		assert.False(t, svc.Has("bad"))
	})

	t.Run("yaml files", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"de/common.yaml": "hello: Hallo :Name\nitems:\n  - eins\n  - zwei\n",
			"de/menu.yml":    "open: Öffnen\n",
			"de/extra.json":  `{"k": "v"}`,
		})

		svc, err := localize.New(root, systemLocale("de-DE"), localize.WithYAML())
		require.NoError(t, err)
		assert.Equal(t, "Hallo Anna", svc.Translate("common.hello", localize.P("name", "anna")))
		assert.Equal(t, "zwei", svc.Translate("common.items.1"))
		assert.Equal(t, "Öffnen", svc.Translate("menu.open"))
		assert.Equal(t, "v", svc.Translate("extra.k"))

		plain, err := localize.New(root, systemLocale("de-DE"))
		require.NoError(t, err)
		assert.False(t, plain.Has("common"))
		assert.Equal(t, "v", plain.Translate("extra.k"))
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	leaves := map[string]string{
		"common.hello":             "Hello :name",
		"common.apples":            "one apple|:count apples",
		"common.range":             "few|many|[*,2] a couple|[3,*] several",
		"common.quoted":            "padded",
		"common.list.0":            "first",
		"common.list.1":            "second",
		"common.number":            "7",
		"common.nested.deep.value": "Deep",
		"menu.items.open":          "Open",
		"menu.items.close":         "Close",
		"errors.not_found":         "Not found",
	}
	for key, want := range leaves {
		assert.Equal(t, want, svc.Translate(key), key)
	}
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	t.Run("refresh keeps loaded keys only", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithInitialScope("common"))
		require.NoError(t, svc.SetLocale("fr", false, ""))

		assert.Equal(t, "fr", svc.Resolution().Folder)
		assert.Equal(t, "Bonjour bob", svc.Translate("common.hello", localize.P("name", "bob")))
		assert.Equal(t, "Profond", svc.Translate("common.nested.deep.value"))
		assert.Equal(t, "premier", svc.Translate("common.list.0"))

		// Keys the new folder lacks are dropped.
		assert.Equal(t, "common.range", svc.Translate("common.range"))
		assert.Equal(t, "common.list.1", svc.Translate("common.list.1"))

		// Keys never loaded stay absent.
		assert.Equal(t, "common.only_fr", svc.Translate("common.only_fr"))
		assert.Equal(t, "common.nested.extra", svc.Translate("common.nested.extra"))
		assert.Equal(t, "menu.items.open", svc.Translate("menu.items.open"))
	})

	t.Run("refresh descends into directories", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.NoError(t, svc.SetLocale("fr-FR", false, ""))

		assert.Equal(t, "Ouvrir", svc.Translate("menu.items.open"))
		assert.Equal(t, "menu.items.close", svc.Translate("menu.items.close"))
		// No errors.json in fr: the loaded value stays.
		assert.Equal(t, "Not found", svc.Translate("errors.not_found"))
	})

	t.Run("reload", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithInitialScope("common"))
		require.NoError(t, svc.SetLocale("fr", true, ""))

		assert.Equal(t, "Seulement en français", svc.Translate("common.only_fr"))
		assert.Equal(t, "Ouvrir", svc.Translate("menu.items.open"))
		assert.Equal(t, "errors.not_found", svc.Translate("errors.not_found"))
	})

	t.Run("scoped reload", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.NoError(t, svc.SetLocale("fr", true, "menu"))

		assert.Equal(t, "Ouvrir", svc.Translate("menu.items.open"))
		assert.Equal(t, "Hello bob", svc.Translate("common.hello", localize.P("name", "bob")))
	})

	t.Run("unknown locale keeps state", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithDefaultLocale("ko-KR"))
		before := svc.Resolution()

		err := svc.SetLocale("ja-JP", true, "")
		require.ErrorIs(t, err, localize.ErrLanguageFolderNotFound)
		assert.Equal(t, before, svc.Resolution())
		assert.Equal(t, "Open", svc.Translate("menu.items.open"))
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, localize.WithForcedLocale("fr"))
		require.NoError(t, svc.SetLocale("ja-JP", false, ""))
		assert.Equal(t, "en", svc.Resolution().Folder)
		assert.True(t, svc.Resolution().Fallback)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("keeps resolution and loaded keys", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"en/common.json": `{"hello": "Hello", "bye": "Bye"}`,
			"en/menu.json":   `{"open": "Open"}`,
		})
		svc, err := localize.New(root, systemLocale("en-US"), localize.WithInitialScope("common"))
		require.NoError(t, err)

		before := svc.Resolution()
		require.Equal(t, locale.MatchLanguage, before.Match)

		var notified int
		cancel := svc.OnLocaleChange(func(locale.Resolution) { notified++ })
		defer cancel()

		require.NoError(t, os.WriteFile(
			filepath.Join(root, "en", "common.json"),
			[]byte(`{"hello": "Howdy", "extra": "Extra"}`),
			0o644,
		))
		require.NoError(t, svc.Refresh())

		assert.Equal(t, "Howdy", svc.Translate("common.hello"))
		assert.False(t, svc.Has("common.bye"))
		assert.False(t, svc.Has("common.extra"))
		assert.False(t, svc.Has("menu.open"))
		assert.Equal(t, before, svc.Resolution())
		assert.Equal(t, "en-US", svc.Locale().Tag())
		assert.Zero(t, notified)
	})

	t.Run("reports invalid files", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"en/common.json": `{"hello": "Hello"}`,
		})
		svc, err := localize.New(root, systemLocale("en"))
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(root, "en", "common.json"), []byte(`{`), 0o644))
		err = svc.Refresh()
		require.ErrorIs(t, err, localize.ErrInvalidFile)
		assert.Equal(t, "Hello", svc.Translate("common.hello"))
	})
}

func TestOnLocaleChange(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	var got []string
	cancel := svc.OnLocaleChange(func(res locale.Resolution) {
		got = append(got, res.Folder)
	})
	svc.OnLocaleChange(nil)()

	require.NoError(t, svc.SetLocale("fr", false, ""))
	require.NoError(t, svc.SetLocale("en", false, ""))
	cancel()
	require.NoError(t, svc.SetLocale("fr", false, ""))

	assert.Equal(t, []string{"fr", "en"}, got)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	node, ok := svc.Snapshot("menu.items")
	require.True(t, ok)
	assert.Equal(t, []string{"close", "open"}, node.Keys())

	node.Delete("open")
	assert.Equal(t, "Open", svc.Translate("menu.items.open"))

	_, ok = svc.Snapshot("nope")
	assert.False(t, ok)
}

func TestMissingKeyHandler(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var missing []string
	svc := newService(t, localize.WithMissingKeyHandler(func(key string) {
		mu.Lock()
		defer mu.Unlock()
		missing = append(missing, key)
	}))

	svc.Translate("common.hello")
	svc.Translate("common.nope")
	require.NoError(t, svc.SetLocale("fr", false, ""))
	svc.TranslateCount("menu.items.close", 2)

	assert.Equal(t, []string{"common.nope", "menu.items.close"}, missing)
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	available, err := svc.Available()
	require.NoError(t, err)

	tags := make([]string, 0, len(available))
	for _, l := range available {
		tags = append(tags, l.Tag())
	}
	assert.Equal(t, []string{"en", "fr"}, tags)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"en/a.json": `{"k": "v"}`})
	svc, err := localize.New(root, systemLocale("en"))
	require.NoError(t, err)

	check := svc.Healthcheck()
	require.NoError(t, check(t.Context()))

	require.NoError(t, os.RemoveAll(filepath.Join(root, "en")))
	require.ErrorIs(t, check(t.Context()), localize.ErrLanguageFolderNotFound)

	require.NoError(t, os.RemoveAll(root))
	require.ErrorIs(t, check(t.Context()), localize.ErrLocalizationFolderNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				text := svc.Translate("menu.items.open")
				assert.Contains(t, []string{"Open", "Ouvrir"}, text)
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			tag := "fr"
			if i%2 == 0 {
				tag = "en"
			}
			assert.NoError(t, svc.SetLocale(tag, true, ""))
		}()
	}
	wg.Wait()
}
