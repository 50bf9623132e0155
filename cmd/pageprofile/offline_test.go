package main_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pageprofile"
	main "github.com/fwojciec/pageprofile/cmd/pageprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints profile with console telemetry and entities", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.ProfileCmd{
			File:     writeFile(t, "page.html", servicesHTML),
			Console:  writeFile(t, "console.json", `[{"kind":"info","text":"fonts [\"Lato\"]"},{"kind":"info","text":"colors [#112233]"}]`),
			Entities: writeFile(t, "entities.json", `[{"label":"email","value":"sales@acme.com"}]`),
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var profile pageprofile.PageProfile
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &profile))
		assert.Equal(t, "Acme Home Services", profile.Name)
		require.NotNil(t, profile.Email)
		assert.Equal(t, "sales@acme.com", *profile.Email)
		require.NotNil(t, profile.Phone)
		assert.Equal(t, "+1 555 123 4567", *profile.Phone)
		assert.Equal(t, []string{"Lato"}, profile.Fonts)
		assert.Equal(t, []string{"#112233"}, profile.Colors)
	})

	t.Run("encodes missing telemetry as empty arrays", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.ProfileCmd{File: writeFile(t, "page.html", "<html><body></body></html>")}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"fonts": []`)
		assert.Contains(t, stdout.String(), `"colors": []`)
		assert.Contains(t, stdout.String(), `"email": null`)
	})

	t.Run("rejects malformed entities", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		cmd := &main.ProfileCmd{
			File:     writeFile(t, "page.html", servicesHTML),
			Entities: writeFile(t, "entities.json", `{not json`),
		}

		err := cmd.Run(deps)

		assert.Equal(t, pageprofile.EINVALID, pageprofile.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("rejects malformed console file", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		cmd := &main.ProfileCmd{
			File:    writeFile(t, "page.html", servicesHTML),
			Console: writeFile(t, "console.json", `fonts`),
		}

		err := cmd.Run(deps)

		assert.Equal(t, pageprofile.EINVALID, pageprofile.ErrorCode(err))
	})
}

func TestBlocksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints blocks tagged with URL", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.BlocksCmd{File: writeFile(t, "page.html", servicesHTML), URL: "https://acme.com/services"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var page pageprofile.PageBlocks
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &page))
		assert.Equal(t, "https://acme.com/services", page.URL)
		require.Len(t, page.Blocks, 3)
		assert.Equal(t, "Plumbing", page.Blocks[0].Title)
		assert.Equal(t, "a.jpg", page.Blocks[0].ImageSrc)
	})

	t.Run("prints readable listing", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.BlocksCmd{File: writeFile(t, "page.html", servicesHTML), URL: "https://acme.com", Text: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Page: https://acme.com\n- Plumbing [a.jpg]\n  Plumbing We fix pipes.")
	})

	t.Run("reports pages without blocks", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.BlocksCmd{File: writeFile(t, "page.html", "<html><body><p>hi</p></body></html>"), Text: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No repeating blocks found.\n", stdout.String())
	})
}

func TestCaptionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints scored captions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.CaptionsCmd{File: writeFile(t, "page.html", servicesHTML)}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var captions []pageprofile.ImageCaption
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &captions))
		require.Len(t, captions, 3)
		assert.Equal(t, "a.jpg", captions[0].Src)
		assert.Equal(t, "image", captions[0].Type)
		assert.Equal(t, "jpg", captions[0].Format)
	})

	t.Run("prints empty array when no captions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.CaptionsCmd{File: writeFile(t, "page.html", "<html></html>")}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout.String())
	})
}
