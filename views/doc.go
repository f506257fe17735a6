// Package views renders the portal's HTML.
//
// Every page is drawn inside the layout's mount point, <div id="app">, with
// the header navigation and the visitor's sign-in state around it. Page copy
// lives in embedded markdown files rendered by package content.
//
//	c.Render(http.StatusOK, views.Document(views.Data{
//	    Session: c.Session(),
//	    Path:    "/home",
//	}, views.Home))
package views
