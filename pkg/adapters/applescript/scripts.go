package applescript

import (
	"fmt"
	"strings"
)

const noSelectionMessage = "No note is currently selected"

const createScript = `
tell application "Notes"
	activate
	set newNote to make new note
	if ("%[1]s" is not "") then
		set body of newNote to "%[1]s"
	end if
	set selection to newNote
	show newNote
	return id of newNote
end tell
`

const showScript = `
tell application "Notes"
	set theNote to note id "%s"
	set theFolder to container of theNote
	show theFolder
	show theNote with separately
	activate
end tell
`

const deleteScript = `
tell application "Notes"
	delete note id "%s"
end tell
`

const restoreScript = `
tell application "Notes"
	set theNote to note id "%s"
	set theFolder to default folder of account 1
	move theNote to theFolder
end tell
`

const bodyScript = `
tell application "Notes"
	set theNote to note id "%s"
	return body of theNote
end tell
`

const plainTextScript = `
tell application "Notes"
	set theNote to note id "%s"
	return plaintext of theNote
end tell
`

const setBodyScript = `
tell application "Notes"
	set theNote to note id "%s"
	set body of theNote to "%s"
end tell
`

var selectedScript = `
tell application "Notes"
	set selectedNotes to selection
	if (count of selectedNotes) is 0 then
		error "` + noSelectionMessage + `"
	else
		set theNote to item 1 of selectedNotes
		return id of theNote
	end if
end tell
`

// listPlainTextScript walks every note of every account and returns the
// entries as a JSON array assembled inside the host.
var listPlainTextScript = buildListPlainTextScript()

func buildListPlainTextScript() string {
	var b strings.Builder
	b.WriteString(`
set output to "["
set isFirst to true
tell application "Notes"
	repeat with acc in accounts
		repeat with theNote in notes of acc
			try
				set noteId to id of theNote
				set noteText to plaintext of theNote
`)
	for _, e := range jsonEscapes {
		fmt.Fprintf(&b, "\t\t\t\tset noteText to my replaceText(noteText, %s, %s)\n", e.scriptToken, scriptLiteral(e.replacement))
	}
	b.WriteString(`				if not isFirst then
					set output to output & ","
				end if
				set isFirst to false
				set output to output & "{\"id\":\"" & noteId & "\",\"plaintext\":\"" & noteText & "\"}"
			end try
		end repeat
	end repeat
end tell
set output to output & "]"
return output

on replaceText(theText, searchStr, replaceStr)
	set AppleScript's text item delimiters to searchStr
	set theItems to text items of theText
	set AppleScript's text item delimiters to replaceStr
	set theText to theItems as text
	set AppleScript's text item delimiters to ""
	return theText
end replaceText
`)
	return b.String()
}
