package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"newsroom/console"
	"newsroom/models"
	"newsroom/services"
	"newsroom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWorkflow(t *testing.T) (*services.AddPostWorkflow, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.News{}))

	return services.NewAddPostWorkflow(services.NewNewsStore(db), utils.NewValidator()), db
}

func runCommand(t *testing.T, w *services.AddPostWorkflow, stdin string, verbose bool, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), w, console.New(strings.NewReader(stdin), &out, &errOut, verbose), args)
	return code, out.String(), errOut.String()
}

func TestRun_AllArguments(t *testing.T) {
	w, _ := setupWorkflow(t)

	code, out, errOut := runCommand(t, w, "", false, "Launch", "We shipped v1", "2023-05-01")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.NotContains(t, out, "Interactive Wizard")
	assert.Contains(t, out, `[OK] New Post "Launch" was successfully created: We shipped v1 (2023-05-01)`)
	assert.NotContains(t, out, "database id")
}

func TestRun_VerbosePrintsID(t *testing.T) {
	w, _ := setupWorkflow(t)

	code, out, _ := runCommand(t, w, "", true, "Launch", "We shipped v1", "2023-05-01")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "// New post database id: 1")
}

func TestRun_InteractiveWizard(t *testing.T) {
	w, db := setupWorkflow(t)

	code, out, errOut := runCommand(t, w, "   \n\nBody text\n2023-02-30\n2023-03-01\n", false, "Wizard")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Add Post Command Interactive Wizard")
	assert.Contains(t, out, " > Title: ******")
	assert.Contains(t, errOut, "The description can not be empty.")
	assert.Contains(t, errOut, "Is invalid date format. (Y-m-d)")
	assert.Contains(t, out, `New Post "Wizard" was successfully created: Body text (2023-03-01)`)

	var count int64
	require.NoError(t, db.Model(&models.News{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRun_Failures(t *testing.T) {
	w, db := setupWorkflow(t)

	code, _, _ := runCommand(t, w, "", false, "Hello", "first", "2023-01-01")
	require.Equal(t, 0, code)

	code, _, errOut := runCommand(t, w, "", false, "Hello", "second", "2023-01-02")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `There is already a post added with the "Hello" title.`)

	code, _, errOut = runCommand(t, w, "", false, "X", "y", "2023-02-30")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Is invalid date format.")

	code, _, errOut = runCommand(t, w, "", false, "a", "b", "2023-01-01", "extra")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Too many arguments")

	var count int64
	require.NoError(t, db.Model(&models.News{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRun_InputEndsEarly(t *testing.T) {
	w, _ := setupWorkflow(t)

	code, _, errOut := runCommand(t, w, "Only a title\n", false)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, console.ErrAborted.Error())
}

func TestInputFromArgs(t *testing.T) {
	in := inputFromArgs([]string{"T"})
	require.NotNil(t, in.Title)
	assert.Equal(t, "T", *in.Title)
	assert.Nil(t, in.Description)
	assert.Nil(t, in.Date)
}

func TestSplitVerbose(t *testing.T) {
	args, verbose := splitVerbose([]string{"Title", "Desc", "2023-05-01", "-v"})
	assert.True(t, verbose)
	assert.Equal(t, []string{"Title", "Desc", "2023-05-01"}, args)

	args, verbose = splitVerbose([]string{"Title", "--v"})
	assert.True(t, verbose)
	assert.Equal(t, []string{"Title"}, args)

	args, verbose = splitVerbose([]string{"Title", "Desc"})
	assert.False(t, verbose)
	assert.Equal(t, []string{"Title", "Desc"}, args)
}

func TestRun_TrailingVerboseFlag(t *testing.T) {
	w, _ := setupWorkflow(t)

	args, verbose := splitVerbose([]string{"Launch", "We shipped v1", "2023-05-01", "-v"})
	code, out, errOut := runCommand(t, w, "", verbose, args...)

	assert.Equal(t, 0, code)
	assert.NotContains(t, errOut, "Too many arguments")
	assert.Contains(t, out, "// New post database id: 1")
}
