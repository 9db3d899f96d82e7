package mxml

import (
	"strconv"

	xml "github.com/subchen/go-xmldom"

	"github.com/notelab/partwise/model"
)

func renderDirection(measureNode *xml.Node, direction model.Direction) {
	switch v := direction.(type) {
	case *model.MetronomeMark:
		node := directionNode(measureNode, v.Placement)
		metronome := node.CreateNode("direction-type").CreateNode("metronome")
		if v.Parentheses {
			metronome.SetAttributeValue("parentheses", "yes")
		}
		metronome.CreateNode("beat-unit").Text = v.BeatUnit.NoteType
		for i := 0; i < v.BeatUnit.Dots; i++ {
			metronome.CreateNode("beat-unit-dot")
		}
		metronome.CreateNode("per-minute").Text = formatFloat(v.BPM)
		finishDirection(node, v.Voice, v.Staff)

	case *model.TextAnnotation:
		node := directionNode(measureNode, v.Placement)
		words := node.CreateNode("direction-type").CreateNode("words")
		if v.FontSize > 0 {
			words.SetAttributeValue("font-size", formatFloat(v.FontSize))
		}
		if v.Italic {
			words.SetAttributeValue("font-style", "italic")
		}
		if v.Bold {
			words.SetAttributeValue("font-weight", "bold")
		}
		words.Text = v.Text
		if v.DashedLine > 0 {
			node.CreateNode("direction-type").CreateNode("dashes").
				SetAttributeValue("number", strconv.Itoa(v.DashedLine)).
				SetAttributeValue("type", "start")
		}
		finishDirection(node, v.Voice, v.Staff)

	case *model.EndDashedLine:
		node := directionNode(measureNode, "")
		node.CreateNode("direction-type").CreateNode("dashes").
			SetAttributeValue("number", strconv.Itoa(v.Number)).
			SetAttributeValue("type", "stop")
		finishDirection(node, v.Voice, v.Staff)

	case *model.Dynamic:
		node := directionNode(measureNode, v.Placement)
		dynamics := node.CreateNode("direction-type").CreateNode("dynamics")
		if model.StandardDynamics[v.Text] {
			dynamics.CreateNode(v.Text)
		} else {
			dynamics.CreateNode("other-dynamics").Text = v.Text
		}
		finishDirection(node, v.Voice, v.Staff)

	case *model.StartBracket:
		node := directionNode(measureNode, v.Placement)
		if v.Text != "" {
			node.CreateNode("direction-type").CreateNode("words").Text = v.Text
		}
		lineEnd := v.LineEnd
		if lineEnd == "" {
			lineEnd = "down"
		}
		node.CreateNode("direction-type").CreateNode("bracket").
			SetAttributeValue("type", "start").
			SetAttributeValue("number", strconv.Itoa(bracketNumber(v.Number))).
			SetAttributeValue("line-end", lineEnd)
		finishDirection(node, v.Voice, v.Staff)

	case *model.StopBracket:
		node := directionNode(measureNode, v.Placement)
		lineEnd := v.LineEnd
		if lineEnd == "" {
			lineEnd = "down"
		}
		node.CreateNode("direction-type").CreateNode("bracket").
			SetAttributeValue("type", "stop").
			SetAttributeValue("number", strconv.Itoa(bracketNumber(v.Number))).
			SetAttributeValue("line-end", lineEnd)
		finishDirection(node, v.Voice, v.Staff)

	case *model.StartPedal:
		node := directionNode(measureNode, v.Placement)
		pedal := node.CreateNode("direction-type").CreateNode("pedal").
			SetAttributeValue("type", "start")
		if v.Sign {
			pedal.SetAttributeValue("sign", "yes")
		}
		finishDirection(node, v.Voice, v.Staff)

	case *model.StopPedal:
		node := directionNode(measureNode, v.Placement)
		pedal := node.CreateNode("direction-type").CreateNode("pedal").
			SetAttributeValue("type", "stop")
		if v.Sign {
			pedal.SetAttributeValue("sign", "yes")
		}
		finishDirection(node, v.Voice, v.Staff)
	}
}

func directionNode(measureNode *xml.Node, placement string) *xml.Node {
	node := measureNode.CreateNode("direction")
	if placement != "" {
		node.SetAttributeValue("placement", placement)
	}
	return node
}

func finishDirection(node *xml.Node, voice, staff int) {
	if voice < 1 {
		voice = 1
	}
	node.CreateNode("voice").Text = strconv.Itoa(voice)
	if staff > 0 {
		node.CreateNode("staff").Text = strconv.Itoa(staff)
	}
}

func bracketNumber(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
