// Copyright 2026 The onramp-go Authors
// This file is part of the onramp-go library.
//
// The onramp-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The onramp-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the onramp-go library. If not, see <http://www.gnu.org/licenses/>.

package diff

import "github.com/beevik/etree"

// BuildCreateAction wraps elem in a finished "<action type="create">".
func BuildCreateAction(elem *etree.Element) *etree.Element {
	act := etree.NewElement("action")
	act.CreateAttr("type", "create")
	act.AddChild(elem)
	return act
}

// BuildModifyAction wraps oldE/newE in a finished
// "<action type="modify">", each under its own <old>/<new> wrapper.
func BuildModifyAction(oldE, newE *etree.Element) *etree.Element {
	act := etree.NewElement("action")
	act.CreateAttr("type", "modify")
	act.CreateElement("old").AddChild(oldE)
	act.CreateElement("new").AddChild(newE)
	return act
}

// BuildDeleteAction wraps oldE (the reconstructed previous state) and
// newStub (the "visible=false" shallow copy) in a finished
// "<action type="delete">".
func BuildDeleteAction(oldE, newStub *etree.Element) *etree.Element {
	act := etree.NewElement("action")
	act.CreateAttr("type", "delete")
	act.CreateElement("old").AddChild(oldE)
	act.CreateElement("new").AddChild(newStub)
	return act
}
